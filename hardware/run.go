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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the VM running as quickly as possible. The continueCheck function
// is called after every instruction. Keypad state is taken from the Input
// field and queued input events are processed before every instruction.
//
// Run returns when the continueCheck function returns Ending or
// Initialising, or when an instruction fails.
func (vm *VM) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		vm.Input.Process()

		switch state {
		case govern.Running:
			_, err := vm.Step(vm.Input.Keypad())
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("vm: unsupported state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the VM for the specified number of steps. The
// continueCheck function is called after every step with the number of steps
// completed so far. A nil continueCheck runs the full number of steps.
//
// RunForCycles returns early if the continueCheck function returns any state
// other than Running. Unlike Run(), a Paused state does not wait.
//
// Keypad state is taken from the Input field as with Run().
func (vm *VM) RunForCycles(numCycles int, continueCheck func(cycle int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(cycle int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for cycle := 0; cycle < numCycles && state == govern.Running; {
		vm.Input.Process()

		_, err := vm.Step(vm.Input.Keypad())
		if err != nil {
			return err
		}
		cycle++

		state, err = continueCheck(cycle)
		if err != nil {
			return err
		}
	}

	return nil
}
