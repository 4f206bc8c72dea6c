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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// VM is the CHIP-8 virtual machine.
type VM struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Timers  *timers.Timers

	// input used by the Run() function. Step() takes the keypad state as an
	// argument and does not consult this field
	Input *input.Input

	// number of steps completed since the last reset
	cycles uint64
}

// NewVM creates a new VM and everything associated with it. The instance
// argument must not be nil.
func NewVM(ins *instance.Instance) (*VM, error) {
	if ins == nil {
		return nil, curated.Errorf("vm: %v", "an instance is required")
	}

	vm := &VM{
		Instance: ins,
		Mem:      memory.NewMemory(),
		Display:  &display.Framebuffer{},
		Timers:   &timers.Timers{},
		Input:    input.NewInput(),
	}

	vm.CPU = cpu.NewCPU(ins, vm.Mem, vm.Display, vm.Timers)

	// random numbers are sensitive to the number of steps
	ins.Random.SetClock(vm)

	vm.Reset()

	return vm, nil
}

func (vm *VM) String() string {
	return fmt.Sprintf("%s %s", vm.CPU, vm.Timers)
}

// Reset returns the VM to its initial state. Memory is cleared, apart from
// the font, and any loaded program is lost.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.CPU.Reset()
	vm.Display.Clear()
	vm.Timers.Reset()
	vm.Input.Release()
	vm.cycles = 0
}

// LoadProgram copies the program into memory at the program origin. Memory
// outside the program area is not touched. If the program is too large then
// nothing is copied and a memory.LoadError is returned.
func (vm *VM) LoadProgram(data []uint8) error {
	return vm.Mem.Load(data)
}

// Step executes one instruction with the supplied keypad state and then
// decrements the timers. The timers are not decremented if the instruction
// fails.
//
// The only error returned is a cpu.StackFault. The outcome returned with the
// error is Transferred because the program counter has not moved.
func (vm *VM) Step(keys input.Keypad) (execution.Outcome, error) {
	if err := vm.CPU.ExecuteInstruction(keys); err != nil {
		return execution.Transferred, err
	}
	vm.Timers.Tick()
	vm.cycles++
	return vm.CPU.LastResult.Outcome, nil
}

// Framebuffer returns a copy of the current display.
func (vm *VM) Framebuffer() display.Frame {
	return vm.Display.Frame()
}

// SoundTimerNonZero returns true if the host should be producing a tone.
func (vm *VM) SoundTimerNonZero() bool {
	return vm.Timers.SoundActive()
}

// Unrecognised returns the number of unrecognised instructions executed since
// the last reset.
func (vm *VM) Unrecognised() int {
	return vm.CPU.Unrecognised
}

// Cycles implements the random.Clock interface.
func (vm *VM) Cycles() uint64 {
	return vm.cycles
}
