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

// Package ebitenplay is an alternative host for the VM using Ebitengine. It
// accepts the same keys as the sdlplay host.
//
// Ebitengine calls Update() sixty times a second and the VM is stepped from
// there. Ebitengine must be run from the main thread.
package ebitenplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPlay implements the ebiten.Game interface.
type EbitenPlay struct {
	vm      *hardware.VM
	program []uint8
	name    string

	// host keys for every keypad key
	keys [input.NumKeys]ebiten.Key

	// the number of VM steps for each call to Update()
	steps int

	// frame image and the pixel buffer used to update it
	img    *ebiten.Image
	pixels []uint8

	tone *tone

	// optional recorder of the tone
	rec gui.ToneRecorder

	paused bool
}

// NewEbitenPlay is the preferred method of initialisation for the EbitenPlay
// type. The program is loaded into the VM immediately and again whenever the
// VM is reset.
func NewEbitenPlay(vm *hardware.VM, prefs *gui.Preferences, name string, program []uint8) (*EbitenPlay, error) {
	eb := &EbitenPlay{
		vm:      vm,
		program: program,
		name:    name,
		img:     ebiten.NewImage(display.Width, display.Height),
	}

	km, err := prefs.Keymap()
	if err != nil {
		return nil, err
	}
	for k := range eb.keys {
		eb.keys[k], err = hostKey(km.Name(uint8(k)))
		if err != nil {
			return nil, err
		}
	}

	err = vm.LoadProgram(program)
	if err != nil {
		return nil, err
	}

	eb.steps = vm.Instance.Prefs.InstructionsPerFrame(int(limiter.DefaultFPS))

	eb.tone, err = newTone()
	if err != nil {
		logger.Logf(logger.Allow, "ebitenplay", "no audio: %v", err)
		eb.tone = nil
	}

	scale := prefs.Scale.Get().(int)
	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)
	ebiten.SetWindowTitle(eb.title())
	ebiten.SetTPS(int(limiter.DefaultFPS))

	return eb, nil
}

// Run the VM until the window is closed or the VM fails.
func (eb *EbitenPlay) Run() error {
	err := ebiten.RunGame(eb)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (eb *EbitenPlay) title() string {
	s := fmt.Sprintf("%s - %s", version.ApplicationName, eb.name)
	if eb.paused {
		return fmt.Sprintf("%s (paused)", s)
	}
	return s
}

// Update implements the ebiten.Game interface.
func (eb *EbitenPlay) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		eb.paused = !eb.paused
		ebiten.SetWindowTitle(eb.title())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		eb.vm.Reset()
		if err := eb.vm.LoadProgram(eb.program); err != nil {
			return err
		}
	}

	if eb.paused {
		if eb.tone != nil {
			eb.tone.set(false)
		}
		return eb.record(false)
	}

	for k, hk := range eb.keys {
		eb.vm.Input.HandleEvent(input.Event{Key: uint8(k), Pressed: ebiten.IsKeyPressed(hk)})
	}

	if err := eb.vm.RunForCycles(eb.steps, nil); err != nil {
		return err
	}

	if eb.tone != nil {
		eb.tone.set(eb.vm.SoundTimerNonZero())
	}

	return eb.record(eb.vm.SoundTimerNonZero())
}

// AddToneRecorder adds a recorder that will be sent the state of the tone
// every frame. Only one recorder can be added.
func (eb *EbitenPlay) AddToneRecorder(rec gui.ToneRecorder) {
	eb.rec = rec
}

func (eb *EbitenPlay) record(on bool) error {
	if eb.rec == nil {
		return nil
	}
	return eb.rec.SetTone(on)
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenPlay) Draw(screen *ebiten.Image) {
	eb.pixels = gui.RGBA(eb.vm.Framebuffer(), eb.pixels)
	eb.img.WritePixels(eb.pixels)
	screen.DrawImage(eb.img, nil)
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the VM display and is scaled to fit the window.
func (eb *EbitenPlay) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}

// ebiten keys for the key names used by the keymap package
var hostKeys = map[string]ebiten.Key{
	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	";": ebiten.KeySemicolon, ",": ebiten.KeyComma, ".": ebiten.KeyPeriod,
	"/": ebiten.KeySlash,
}

func hostKey(name string) (ebiten.Key, error) {
	k, ok := hostKeys[name]
	if !ok {
		return 0, fmt.Errorf("ebitenplay: no key for %q", name)
	}
	return k, nil
}
