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

// Package programloader is used to specify the program image to load into
// the VM. Program images can be loaded from the local filesystem or over
// HTTP.
//
// The Loader type records the SHA1 hash of the loaded data. An expected hash
// can be specified before loading, in which case data that does not match
// the hash is rejected.
package programloader
