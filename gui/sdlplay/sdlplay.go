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

// Package sdlplay is a simple SDL host for the VM. The VM is run from the
// same goroutine as the SDL event loop, which must be the main thread.
//
// Keyboard input is mapped to the keypad of the VM with the keymap package.
// In addition, the following keys are recognised:
//
//	Escape	quit
//	F1	pause/resume
//	F5	reset and reload the program
package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors from the SDL library.
const SDLError = "sdl: %v"

// SdlPlay is a simple SDL host for the VM.
type SdlPlay struct {
	vm      *hardware.VM
	prefs   *gui.Preferences
	program []uint8
	name    string

	keys *keymap.Keymap

	// limit screen updates to a fixed fps
	lmtr *limiter.Limiter

	// audio is optional. a nil value means that no audio device could be
	// opened
	aud *sdlaudio.Audio

	// optional recorder of the tone
	rec gui.ToneRecorder

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer

	// the frame most recently drawn. the renderer is only updated when the
	// frame changes
	frame display.Frame
	drawn bool

	paused bool
	quit   bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// program is loaded into the VM immediately and again whenever the VM is
// reset.
func NewSdlPlay(vm *hardware.VM, prefs *gui.Preferences, name string, program []uint8) (*SdlPlay, error) {
	scr := &SdlPlay{
		vm:      vm,
		prefs:   prefs,
		program: program,
		name:    name,
	}

	var err error

	scr.keys, err = prefs.Keymap()
	if err != nil {
		return nil, err
	}

	err = vm.LoadProgram(program)
	if err != nil {
		return nil, err
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scale := int32(prefs.Scale.Get().(int))

	scr.window, err = sdl.CreateWindow(scr.title(0),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scale, display.Height*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	// everything drawn through the renderer is scaled. one VM pixel is
	// drawn as a 1x1 rectangle
	err = scr.renderer.SetScale(float32(scale), float32(scale))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.aud, err = sdlaudio.NewAudio()
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "no audio: %v", err)
		scr.aud = nil
	}

	scr.lmtr = limiter.NewLimiter()

	return scr, nil
}

// Destroy releases all SDL resources.
func (scr *SdlPlay) Destroy() {
	if scr.lmtr != nil {
		scr.lmtr.Stop()
	}
	if scr.aud != nil {
		scr.aud.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

func (scr *SdlPlay) title(fps float32) string {
	s := fmt.Sprintf("%s - %s", version.ApplicationName, scr.name)
	if scr.paused {
		return fmt.Sprintf("%s (paused)", s)
	}
	if fps > 0 {
		return fmt.Sprintf("%s (%.1f fps)", s, fps)
	}
	return s
}

// render the VM framebuffer if it has changed since the last render.
func (scr *SdlPlay) render() error {
	frame := scr.vm.Framebuffer()
	if scr.drawn && frame == scr.frame {
		return nil
	}
	scr.frame = frame
	scr.drawn = true

	c := gui.PixelOff
	if err := scr.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	c = gui.PixelOn
	if err := scr.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLError, err)
	}

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if frame.Pixel(x, y) {
				err := scr.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
				if err != nil {
					return curated.Errorf(SDLError, err)
				}
			}
		}
	}

	scr.renderer.Present()

	return nil
}

// AddToneRecorder adds a recorder that will be sent the state of the tone
// every frame. Only one recorder can be added.
func (scr *SdlPlay) AddToneRecorder(rec gui.ToneRecorder) {
	scr.rec = rec
}

// reset the VM and reload the program.
func (scr *SdlPlay) reset() error {
	scr.vm.Reset()
	return scr.vm.LoadProgram(scr.program)
}
