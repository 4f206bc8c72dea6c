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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/govern"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/programloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the period the VM runs for before measurement begins.
var Leadtime = 2 * time.Second

// Check the performance of the VM using the supplied program.
//
// The VM will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, prog programloader.Loader, duration string) error {
	var err error

	if !prog.HasLoaded() {
		err = prog.Load()
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	ins := instance.NewInstance(nil, preferences.NewDefaults())
	ins.Label = instance.Performance
	ins.Normalise()

	vm, err := hardware.NewVM(ins)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = vm.LoadProgram(prog.Data)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startCycle uint64

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has elapsed
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(Leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		return vm.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startCycle = vm.Cycles()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numCycles := vm.Cycles() - startCycle
	ips, ratio := CalcSpeed(numCycles, dur.Seconds(), ins.Prefs.Speed.Get().(int))
	output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds) %.1f%%\n", ips, numCycles, dur.Seconds(), ratio)))

	if n := vm.Unrecognised(); n > 0 {
		output.Write([]byte(fmt.Sprintf("%d unrecognised instructions\n", n)))
	}

	return nil
}
