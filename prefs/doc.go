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

// Package prefs facilitates the storage of preferential values in the
// application. It is the basis of the preferences in the hardware/preferences
// package and the host packages.
//
// The package supports the Bool, Int, Float and String types. Values of these
// types are registered with a Disk instance with a unique key and can then be
// saved to and loaded from a file. Values are stored one per line in the
// form:
//
//	key :: value
//
// Keys are conventionally divided into groups with a period. For example,
// "vm.speed" and "sdl.scale".
//
// Each type supports a pre and a post hook. The hooks are called every time
// the value is Set(), even if the value has not changed. A pre hook that
// returns an error prevents the value from being changed.
//
// The command line stack allows preference values to be specified for a
// single run of the program. For example:
//
//	prefs.PushCommandLineStack("vm.speed::1000; vm.seed::1")
//
// Values on the top of the stack are used in preference to values in the
// file when Load() is called. They are never saved to disk.
package prefs
