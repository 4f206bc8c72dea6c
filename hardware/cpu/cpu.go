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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Display defines the framebuffer operations required by the CPU.
type Display interface {
	Clear()
	Draw(x uint8, y uint8, sprite []uint8) bool
}

// Timers defines the timer operations required by the CPU.
type Timers interface {
	Delay() uint8
	SetDelay(uint8)
	SetSound(uint8)
}

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// flag register index
const vf = 0xf

// CPU implements the CHIP-8 interpreter. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC    registers.ProgramCounter
	V     [NumRegisters]registers.Register
	I     registers.Index
	Stack Stack

	mem    cpubus.Memory
	fb     Display
	timers Timers

	// the most recent instruction executed
	LastResult execution.Result

	// the number of unrecognised instructions executed since the last reset
	Unrecognised int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// should be Reset() before use.
func NewCPU(ins *instance.Instance, mem cpubus.Memory, fb Display, tmr Timers) *CPU {
	mc := &CPU{
		instance: ins,
		mem:      mem,
		fb:       fb,
		timers:   tmr,
	}
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s %s", mc.PC.Label(), mc.PC, mc.I, mc.Stack))
	for _, v := range mc.V {
		s.WriteString(" ")
		s.WriteString(v.String())
	}
	return s.String()
}

// Reset reinitialises all registers. The PC is set to the program origin.
func (mc *CPU) Reset() {
	mc.PC.Load(memorymap.OriginProgram)
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.Stack.Reset()
	mc.LastResult = execution.Result{}
	mc.Unrecognised = 0
}

// ExecuteInstruction reads the instruction at the PC, executes it and then
// advances the PC according to the outcome.
//
// The only error returned is a StackFault. In that case the CPU is unchanged
// and LastResult.Final is false.
func (mc *CPU) ExecuteInstruction(keys input.Keypad) error {
	pc := mc.PC.Address()
	word := uint16(mc.mem.Read(pc))<<8 | uint16(mc.mem.Read(pc+1))

	ins := instructions.Decode(word)
	defn := instructions.Lookup(ins)

	mc.LastResult = execution.Result{
		Address:     pc,
		Instruction: ins,
		Defn:        defn,
	}

	outcome, err := handlers[defn.Operator](mc, ins, keys)
	if err != nil {
		return err
	}

	mc.PC.Add(outcome.Advance())

	mc.LastResult.Outcome = outcome
	mc.LastResult.Final = true

	return nil
}

// flag writes 1 or 0 to VF.
func (mc *CPU) flag(v bool) {
	if v {
		mc.V[vf].Load(1)
	} else {
		mc.V[vf].Load(0)
	}
}
