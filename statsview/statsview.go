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


//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher8/logger"
)

// Address of the stats server.
const Address = "localhost:12800"

// path of the stats page on the server
const page = "/debug/statsview"

// Available returns true if the stats server can be launched.
func Available() bool {
	return true
}

// URL returns the address of the stats page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, page)
}

// Launch the stats server in a new goroutine and write the URL of the stats
// page to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithTheme(viewer.ThemeWesteros))

	go func() {
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "server started at %s", Address)
	fmt.Fprintf(output, "stats server available at %s\n", URL())
}
