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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

type mockMem struct {
	data [4096]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address&0x0fff]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address&0x0fff] = data
}

// putInstructions writes the instruction words at origin and returns the
// address following the last instruction.
func (mem *mockMem) putInstructions(origin uint16, words ...uint16) uint16 {
	for _, w := range words {
		mem.Write(origin, uint8(w>>8))
		mem.Write(origin+1, uint8(w))
		origin += 2
	}
	return origin
}

type harness struct {
	mc  *cpu.CPU
	mem *mockMem
	fb  *display.Framebuffer
	tmr *timers.Timers
	ins *instance.Instance
}

func newHarness() *harness {
	h := &harness{
		mem: &mockMem{},
		fb:  &display.Framebuffer{},
		tmr: &timers.Timers{},
		ins: instance.NewInstance(nil, nil),
	}
	h.ins.Normalise()
	h.mc = cpu.NewCPU(h.ins, h.mem, h.fb, h.tmr)
	return h
}

// run puts the instructions at the program origin, resets the PC and then
// executes one instruction for each word.
func (h *harness) run(t *testing.T, words ...uint16) {
	t.Helper()
	h.mem.putInstructions(0x200, words...)
	h.mc.PC.Load(0x200)
	for range words {
		h.step(t, input.Keypad{})
	}
}

func (h *harness) step(t *testing.T, keys input.Keypad) {
	t.Helper()
	test.DemandSuccess(t, h.mc.ExecuteInstruction(keys))
}
