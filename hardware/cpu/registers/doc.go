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

// Package registers implements the three types of register found in the CPU.
//
// Register is the 8-bit general purpose register. There are sixteen of these
// in the CPU, V0 to VF. The arithmetic functions return the state of the flag
// that results from the operation but the flag register (VF) is not changed
// by this package. It is the responsibility of the CPU to write the flag
// after the result has been written to the target register. For example:
//
//	carry := v[x].Add(v[y].Value())
//	v[0xf].Load(boolToFlag(carry))
//
// Index is the 16-bit I register. The value is stored in full but Address()
// always returns a 12-bit value suitable for addressing memory.
//
// ProgramCounter is the PC. Values loaded into the PC are always masked to 12
// bits.
package registers
