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

// Package memory implements the 4096 byte memory space of the VM. The layout
// of the memory space is described by the memorymap package.
//
// The Memory type implements the cpubus.Memory interface. Every address is
// masked to twelve bits so reads and writes never fail. Reads that go beyond
// the end of memory (a sprite or a register dump near the top of memory for
// example) wrap around to the bottom of memory.
//
// After a Reset() the memory is cleared and the font is copied to the bottom
// of memory. Programs are loaded with Load(), which copies the data to the
// program origin without otherwise changing memory.
package memory
