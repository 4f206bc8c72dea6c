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


// Package dump writes the state of a VM as a graphviz graph. The output can
// be converted to an image with the dot tool:
//
//	dot -Tsvg vm.dot > vm.svg
package dump

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
)

// Error patterns returned by the dump package.
const (
	NoVM      = "dump: no VM to dump"
	DumpError = "dump: %v"
)

// Write the graph of the VM to the io.Writer.
func Write(w io.Writer, vm *hardware.VM) error {
	if vm == nil {
		return curated.Errorf(NoVM)
	}
	memviz.Map(w, vm)
	return nil
}

// ToFile writes the graph of the VM to the named file.
func ToFile(filename string, vm *hardware.VM) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DumpError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(DumpError, err)
		}
	}()

	return Write(f, vm)
}
