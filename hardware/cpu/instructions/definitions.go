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

// Operator identifies the operation performed by an instruction.
type Operator int

// List of valid Operator values.
const (
	Unrecognised Operator = iota

	ClearScreen
	Return
	Jump
	Call
	SkipEqualImmediate
	SkipNotEqualImmediate
	SkipEqualRegister
	LoadImmediate
	AddImmediate
	LoadRegister
	Or
	And
	Xor
	AddRegister
	Subtract
	ShiftRight
	SubtractReverse
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	AddIndex
	LoadFont
	StoreBCD
	StoreRegisters
	LoadRegisters

	// the number of operators. not a valid operator
	NumOperators
)

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Register Category = iota
	Memory
	Flow
	Subroutine
	Skip
	Display
	Timer
	Input
)

func (c Category) String() string {
	switch c {
	case Register:
		return "Register"
	case Memory:
		return "Memory"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Display:
		return "Display"
	case Timer:
		return "Timer"
	case Input:
		return "Input"
	}
	return "unknown category"
}

// Operands describes how the operands of an instruction are presented.
type Operands int

// List of valid Operands values.
const (
	NoOperands Operands = iota
	Address
	OffsetAddress
	RegisterByte
	RegisterRegister
	RegisterOnly
	IndexAddress
	Sprite
	RegisterDelay
	RegisterKey
	DelayRegister
	SoundRegister
	IndexRegister
	FontRegister
	BCDRegister
	StoreToIndex
	LoadFromIndex
	RawWord
)

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	Operator Operator
	Mnemonic string
	Key      Key
	Operands Operands
	Effect   Category
}

func (defn Definition) String() string {
	if defn.Operator == Unrecognised {
		return "unrecognised instruction"
	}
	return fmt.Sprintf("%s %s [effect=%s]", defn.Key, defn.Mnemonic, defn.Effect)
}

// Operand formats the operands of the decoded instruction according to the
// definition.
func (defn Definition) Operand(ins Instruction) string {
	switch defn.Operands {
	case NoOperands:
		return ""
	case Address:
		return fmt.Sprintf("$%03X", ins.NNN)
	case OffsetAddress:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case RegisterByte:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
	case RegisterRegister:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case RegisterOnly:
		return fmt.Sprintf("V%X", ins.X)
	case IndexAddress:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case Sprite:
		return fmt.Sprintf("V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case RegisterDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case RegisterKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case DelayRegister:
		return fmt.Sprintf("DT, V%X", ins.X)
	case SoundRegister:
		return fmt.Sprintf("ST, V%X", ins.X)
	case IndexRegister:
		return fmt.Sprintf("I, V%X", ins.X)
	case FontRegister:
		return fmt.Sprintf("F, V%X", ins.X)
	case BCDRegister:
		return fmt.Sprintf("B, V%X", ins.X)
	case StoreToIndex:
		return fmt.Sprintf("[I], V%X", ins.X)
	case LoadFromIndex:
		return fmt.Sprintf("V%X, [I]", ins.X)
	case RawWord:
		return fmt.Sprintf("$%04X", ins.Word)
	}
	return ""
}

// Format the decoded instruction as assembly language.
func (defn Definition) Format(ins Instruction) string {
	op := defn.Operand(ins)
	if op == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, op)
}

// UnrecognisedDefinition is returned by Lookup() for instruction words that
// are not in the instruction set.
var UnrecognisedDefinition = Definition{
	Operator: Unrecognised,
	Mnemonic: "DW",
	Operands: RawWord,
	Effect:   Register,
}

// Definitions is the complete instruction set.
var Definitions = []Definition{
	{Operator: ClearScreen, Mnemonic: "CLS", Key: Key{0x0, 0xe0}, Operands: NoOperands, Effect: Display},
	{Operator: Return, Mnemonic: "RET", Key: Key{0x0, 0xee}, Operands: NoOperands, Effect: Subroutine},
	{Operator: Jump, Mnemonic: "JP", Key: Key{0x1, 0}, Operands: Address, Effect: Flow},
	{Operator: Call, Mnemonic: "CALL", Key: Key{0x2, 0}, Operands: Address, Effect: Subroutine},
	{Operator: SkipEqualImmediate, Mnemonic: "SE", Key: Key{0x3, 0}, Operands: RegisterByte, Effect: Skip},
	{Operator: SkipNotEqualImmediate, Mnemonic: "SNE", Key: Key{0x4, 0}, Operands: RegisterByte, Effect: Skip},
	{Operator: SkipEqualRegister, Mnemonic: "SE", Key: Key{0x5, 0}, Operands: RegisterRegister, Effect: Skip},
	{Operator: LoadImmediate, Mnemonic: "LD", Key: Key{0x6, 0}, Operands: RegisterByte, Effect: Register},
	{Operator: AddImmediate, Mnemonic: "ADD", Key: Key{0x7, 0}, Operands: RegisterByte, Effect: Register},
	{Operator: LoadRegister, Mnemonic: "LD", Key: Key{0x8, 0x0}, Operands: RegisterRegister, Effect: Register},
	{Operator: Or, Mnemonic: "OR", Key: Key{0x8, 0x1}, Operands: RegisterRegister, Effect: Register},
	{Operator: And, Mnemonic: "AND", Key: Key{0x8, 0x2}, Operands: RegisterRegister, Effect: Register},
	{Operator: Xor, Mnemonic: "XOR", Key: Key{0x8, 0x3}, Operands: RegisterRegister, Effect: Register},
	{Operator: AddRegister, Mnemonic: "ADD", Key: Key{0x8, 0x4}, Operands: RegisterRegister, Effect: Register},
	{Operator: Subtract, Mnemonic: "SUB", Key: Key{0x8, 0x5}, Operands: RegisterRegister, Effect: Register},
	{Operator: ShiftRight, Mnemonic: "SHR", Key: Key{0x8, 0x6}, Operands: RegisterOnly, Effect: Register},
	{Operator: SubtractReverse, Mnemonic: "SUBN", Key: Key{0x8, 0x7}, Operands: RegisterRegister, Effect: Register},
	{Operator: ShiftLeft, Mnemonic: "SHL", Key: Key{0x8, 0xe}, Operands: RegisterOnly, Effect: Register},
	{Operator: SkipNotEqualRegister, Mnemonic: "SNE", Key: Key{0x9, 0}, Operands: RegisterRegister, Effect: Skip},
	{Operator: LoadIndex, Mnemonic: "LD", Key: Key{0xa, 0}, Operands: IndexAddress, Effect: Register},
	{Operator: JumpOffset, Mnemonic: "JP", Key: Key{0xb, 0}, Operands: OffsetAddress, Effect: Flow},
	{Operator: Random, Mnemonic: "RND", Key: Key{0xc, 0}, Operands: RegisterByte, Effect: Register},
	{Operator: Draw, Mnemonic: "DRW", Key: Key{0xd, 0}, Operands: Sprite, Effect: Display},
	{Operator: SkipKeyPressed, Mnemonic: "SKP", Key: Key{0xe, 0x9e}, Operands: RegisterOnly, Effect: Input},
	{Operator: SkipKeyNotPressed, Mnemonic: "SKNP", Key: Key{0xe, 0xa1}, Operands: RegisterOnly, Effect: Input},
	{Operator: LoadFromDelay, Mnemonic: "LD", Key: Key{0xf, 0x07}, Operands: RegisterDelay, Effect: Timer},
	{Operator: WaitKey, Mnemonic: "LD", Key: Key{0xf, 0x0a}, Operands: RegisterKey, Effect: Input},
	{Operator: LoadDelay, Mnemonic: "LD", Key: Key{0xf, 0x15}, Operands: DelayRegister, Effect: Timer},
	{Operator: LoadSound, Mnemonic: "LD", Key: Key{0xf, 0x18}, Operands: SoundRegister, Effect: Timer},
	{Operator: AddIndex, Mnemonic: "ADD", Key: Key{0xf, 0x1e}, Operands: IndexRegister, Effect: Register},
	{Operator: LoadFont, Mnemonic: "LD", Key: Key{0xf, 0x29}, Operands: FontRegister, Effect: Register},
	{Operator: StoreBCD, Mnemonic: "LD", Key: Key{0xf, 0x33}, Operands: BCDRegister, Effect: Memory},
	{Operator: StoreRegisters, Mnemonic: "LD", Key: Key{0xf, 0x55}, Operands: StoreToIndex, Effect: Memory},
	{Operator: LoadRegisters, Mnemonic: "LD", Key: Key{0xf, 0x65}, Operands: LoadFromIndex, Effect: Memory},
}

// lookup table built from the Definitions list
var lookup map[Key]Definition

func init() {
	lookup = make(map[Key]Definition, len(Definitions))
	for _, defn := range Definitions {
		if _, ok := lookup[defn.Key]; ok {
			panic(fmt.Sprintf("duplicate instruction definition: %s", defn.Key))
		}
		lookup[defn.Key] = defn
	}
}

// Lookup returns the definition for the decoded instruction. The
// UnrecognisedDefinition is returned if the instruction is not in the
// instruction set.
func Lookup(ins Instruction) Definition {
	if defn, ok := lookup[ins.Key()]; ok {
		return defn
	}
	return UnrecognisedDefinition
}
