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

// Package memorymap describes the layout of the memory space. The addresses
// are twelve bits wide and all addresses are masked to twelve bits before
// being used.
//
//	0x000 - 0x04f    font (16 glyphs of five bytes)
//	0x050 - 0x1ff    unused
//	0x200 - 0xfff    program
package memorymap

// Size of the memory space in bytes.
const Size = 4096

// AddressMask is applied to every address.
const AddressMask = Size - 1

// Font location and size.
const (
	OriginFont = 0x000
	FontGlyph  = 5
	FontSize   = 16 * FontGlyph
)

// Program location and maximum size.
const (
	OriginProgram  = 0x200
	MaxProgramSize = Size - OriginProgram
)
