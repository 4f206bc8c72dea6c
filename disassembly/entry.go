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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every word is a valid
// instruction. Blessed entries have been reached by following the flow of the
// program from the origin.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return ""
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	Address     uint16
	Instruction instructions.Instruction
	Defn        instructions.Definition

	// string representations of the instruction
	Operator string
	Operand  string
}

func newEntry(address uint16, ins instructions.Instruction, level EntryLevel) *Entry {
	defn := instructions.Lookup(ins)
	return &Entry{
		Level:       level,
		Address:     address,
		Instruction: ins,
		Defn:        defn,
		Operator:    defn.Mnemonic,
		Operand:     defn.Operand(ins),
	}
}

// FormatWord creates an Entry for a single instruction word. The address of
// the Entry is zero.
func FormatWord(word uint16) *Entry {
	return newEntry(0, instructions.Decode(word), EntryLevelDecoded)
}

// FormatResult creates an Entry from the result of an executed instruction.
func FormatResult(result execution.Result) *Entry {
	return newEntry(result.Address, result.Instruction, EntryLevelBlessed)
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("0x%03x  %s  %s", e.Address, e.Instruction, e.Operator)
	}
	return fmt.Sprintf("0x%03x  %s  %s %s", e.Address, e.Instruction, e.Operator, e.Operand)
}
