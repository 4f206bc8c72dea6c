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

package instructions

import "fmt"

// Instruction is a decoded instruction word.
type Instruction struct {
	Word uint16

	// bits 12 to 15
	Family uint8

	// bits 8 to 11 and 4 to 7. register indexes
	X uint8
	Y uint8

	// bits 0 to 11. an address
	NNN uint16

	// bits 0 to 7. an immediate value
	KK uint8

	// bits 0 to 3
	N uint8
}

// Decode splits an instruction word into its fields. It never fails.
func Decode(word uint16) Instruction {
	return Instruction{
		Word:   word,
		Family: uint8(word >> 12),
		X:      uint8(word>>8) & 0x0f,
		Y:      uint8(word>>4) & 0x0f,
		NNN:    word & 0x0fff,
		KK:     uint8(word),
		N:      uint8(word) & 0x0f,
	}
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04x", ins.Word)
}

// Selector describes how the sub-selector of a family is formed.
type Selector int

// List of valid Selector values.
const (
	// the family has only one instruction
	NoSelector Selector = iota

	// the low byte of the instruction word
	LowByte

	// the low nibble of the instruction word
	LowNibble
)

func (s Selector) String() string {
	switch s {
	case NoSelector:
		return "none"
	case LowByte:
		return "low byte"
	case LowNibble:
		return "low nibble"
	}
	return "unknown selector"
}

// FamilySelector returns the Selector for the family.
func FamilySelector(family uint8) Selector {
	switch family & 0x0f {
	case 0x0, 0xe, 0xf:
		return LowByte
	case 0x8:
		return LowNibble
	}
	return NoSelector
}

// Key identifies a Definition.
type Key struct {
	Family uint8
	Sub    uint8
}

func (k Key) String() string {
	switch FamilySelector(k.Family) {
	case LowByte:
		return fmt.Sprintf("%X_%02X", k.Family, k.Sub)
	case LowNibble:
		return fmt.Sprintf("%X__%X", k.Family, k.Sub)
	}
	return fmt.Sprintf("%X___", k.Family)
}

// Key returns the lookup key for the instruction.
func (ins Instruction) Key() Key {
	switch FamilySelector(ins.Family) {
	case LowByte:
		return Key{Family: ins.Family, Sub: ins.KK}
	case LowNibble:
		return Key{Family: ins.Family, Sub: ins.N}
	}
	return Key{Family: ins.Family}
}
