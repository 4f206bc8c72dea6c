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

package sdlplay

import (
	"time"
)

// how often the window title is updated with the measured frame rate
const titleUpdate = time.Second

// Run the VM until the window is closed or the VM fails. MUST ONLY be called
// from the main thread.
func (scr *SdlPlay) Run() error {
	steps := scr.vm.Instance.Prefs.InstructionsPerFrame(int(scr.lmtr.Limit()))
	titleTime := time.Now()

	for !scr.quit {
		if err := scr.service(); err != nil {
			return err
		}

		if !scr.paused {
			if err := scr.vm.RunForCycles(steps, nil); err != nil {
				return err
			}
		}

		if err := scr.render(); err != nil {
			return err
		}

		tone := !scr.paused && scr.vm.SoundTimerNonZero()
		if scr.aud != nil {
			if err := scr.aud.SetTone(tone); err != nil {
				return err
			}
		}
		if scr.rec != nil {
			if err := scr.rec.SetTone(tone); err != nil {
				return err
			}
		}

		scr.lmtr.CheckFrame()
		scr.lmtr.MeasureActual()

		if !scr.paused && time.Since(titleTime) >= titleUpdate {
			titleTime = time.Now()
			scr.window.SetTitle(scr.title(scr.lmtr.Measured.Load().(float32)))
		}
	}

	return nil
}
