// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// FileError is the pattern of all errors returned by the Load() function.
const FileError = "programloader: %v"

// FileExtensions is the list of file extensions that are recognised as
// program images. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".BIN", ".ROM"}

// Loader specifies the program to load into the VM.
type Loader struct {
	// filename of the program to load. can be a http or https URL
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename, without the path
// or the extension.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsProgramFile returns true if the file extension of the filename is in the
// FileExtensions list.
func IsProgramFile(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program data. Filenames with a URL scheme of http or https are
// fetched over the network. Otherwise the filename is a path in the local
// filesystem.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []uint8

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(FileError, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	default:
		return curated.Errorf(FileError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(FileError, fmt.Sprintf("%s: program is empty", ld.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(FileError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
