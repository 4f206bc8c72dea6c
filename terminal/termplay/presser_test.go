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


package termplay_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressReachesVM(t *testing.T) {
	ins := instance.NewInstance(nil, nil)
	ins.Normalise()
	vm, err := hardware.NewVM(ins)
	test.DemandSuccess(t, err)

	// LD V5, K followed by a jump to itself
	test.DemandSuccess(t, vm.LoadProgram([]uint8{0xf5, 0x0a, 0x12, 0x02}))

	p := termplay.NewPresser(vm.Input, time.Hour)

	test.DemandSuccess(t, vm.RunForCycles(10, nil))
	test.ExpectEquality(t, vm.CPU.PC.Address(), 0x200)

	// the press is pushed from another goroutine and is only applied to the
	// keypad when the VM next runs
	done := make(chan error)
	go func() {
		done <- p.Press(0x9)
	}()
	test.DemandSuccess(t, <-done)

	test.DemandSuccess(t, vm.RunForCycles(1, nil))
	test.ExpectEquality(t, vm.CPU.V[5].Value(), 0x9)
	test.ExpectEquality(t, vm.CPU.PC.Address(), 0x202)
}

func TestPressIsReleased(t *testing.T) {
	if testing.Short() {
		t.Skip("key hold timing takes too long in short mode")
	}

	inp := input.NewInput()
	p := termplay.NewPresser(inp, 200*time.Millisecond)

	test.DemandSuccess(t, p.Press(0x15))
	inp.Process()
	test.ExpectSuccess(t, inp.Keypad().Pressed(0x5))

	// a second press extends the hold beyond the first release
	time.Sleep(120 * time.Millisecond)
	test.DemandSuccess(t, p.Press(0x5))
	time.Sleep(120 * time.Millisecond)
	inp.Process()
	test.ExpectSuccess(t, inp.Keypad().Pressed(0x5))

	time.Sleep(200 * time.Millisecond)
	inp.Process()
	test.ExpectFailure(t, inp.Keypad().Pressed(0x5))
}
