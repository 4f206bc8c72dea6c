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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Before parsing, the list of recognised modes can be specified with
// AddSubModes(). The first mode in the list is the default mode and is
// selected if the first non-flag argument is not a mode name.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	_, err := md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 10.0, "window scale")
//		...
//	}
//
// Each call to NewMode() starts a new set of flags that apply to the
// arguments following the mode name. Mode names are case insensitive and are
// always reported in upper case. The series of modes selected is available
// with Path().
//
// A -help flag is handled automatically. Parse() returns ParseHelp when help
// has been printed to the Output writer.
package modalflag
