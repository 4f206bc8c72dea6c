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

// Package disassembly coordinates the disassembly of CHIP-8 programs.
//
// Disassembly happens in two passes. The linear pass decodes every word of
// the program as though it is an instruction. The flow pass follows the
// program from the origin, taking every branch of every jump, call and skip,
// and blesses the entries it reaches. Blessed entries are much more likely
// to be instructions rather than data.
//
// The flow pass cannot follow a JP V0, $NNN instruction because the
// destination depends on the value of V0 when the program is running.
//
// No instructions are executed during disassembly.
package disassembly
