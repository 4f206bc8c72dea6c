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

// Package instructions defines the instruction set of the CPU and the
// decoding of 16-bit instruction words.
//
// Decode() splits an instruction word into its fields. It does not know
// anything about what the instruction does and will happily decode any
// 16-bit value.
//
// The Definitions table lists every instruction recognised by the CPU. Each
// Definition is identified by a Key, which is the family of the instruction
// (the top nibble of the instruction word) and, for those families that have
// more than one instruction, a sub-selector:
//
//	family 0x0, 0xE, 0xF: the low byte of the instruction word
//	family 0x8          : the low nibble of the instruction word
//
// Families not listed above have exactly one instruction and the
// sub-selector is always zero.
//
// Lookup() finds the definition for a decoded instruction. An instruction
// word that is not in the table returns the Unrecognised definition.
package instructions
