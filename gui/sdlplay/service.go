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
	"github.com/jetsetilly/gopher8/hardware/input"

	"github.com/veandco/go-sdl2/sdl"
)

// service all outstanding SDL events. MUST ONLY be called from the main
// thread.
func (scr *SdlPlay) service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			down := ev.Type == sdl.KEYDOWN

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				if down {
					scr.quit = true
				}
				continue
			case sdl.K_F1:
				if down {
					scr.paused = !scr.paused
					scr.window.SetTitle(scr.title(0))
				}
				continue
			case sdl.K_F5:
				if down {
					if err := scr.reset(); err != nil {
						return err
					}
				}
				continue
			}

			if k, ok := scr.keys.Lookup(sdl.GetKeyName(ev.Keysym.Sym)); ok {
				scr.vm.Input.HandleEvent(input.Event{Key: k, Pressed: down})
			}
		}
	}

	return nil
}
