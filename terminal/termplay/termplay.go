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


// Package termplay runs the VM in a posix terminal. The framebuffer is drawn
// with block characters and a status line is printed underneath.
//
// Terminals do not report key releases so a key is held for HoldDuration
// after it is pressed. Keys that auto-repeat are held for as long as the
// repeat continues. Key presses are pushed to the VM's input queue directly
// from the goroutine reading the terminal.
//
// In addition to the keys of the keymap, the following keys are recognised:
//
//	Escape	quit
//	Ctrl-C	quit
//	F1	pause/resume
//	F5	reset and reload the program
package termplay

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/govern"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/version"
)

// TermPlay is a terminal host for the VM.
type TermPlay struct {
	easyterm.Terminal

	vm      *hardware.VM
	program []uint8
	name    string

	keys *keymap.Keymap

	lmtr *limiter.Limiter

	// optional recorder of the tone. the terminal host has no audio of its
	// own
	rec gui.ToneRecorder

	// key presses are pushed to the VM input by the reader goroutine
	presser *Presser

	// host commands decoded by the reader goroutine
	commands chan Command

	// closed when Run() returns. the reader goroutine stops sending
	// commands once it is closed
	stop chan bool

	// set to Ending by the reader goroutine when the input terminal closes
	request govern.Request

	frame display.Frame
	drawn bool

	paused bool
	quit   bool
}

// NewTermPlay is the preferred method of initialisation for TermPlay.
func NewTermPlay(vm *hardware.VM, keys *keymap.Keymap, name string, program []uint8) (*TermPlay, error) {
	trm := newTermPlay(vm, keys, name, program)

	if err := vm.LoadProgram(program); err != nil {
		return nil, err
	}

	if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	trm.lmtr = limiter.NewLimiter()

	return trm, nil
}

// the parts of TermPlay that do not require a terminal.
func newTermPlay(vm *hardware.VM, keys *keymap.Keymap, name string, program []uint8) *TermPlay {
	return &TermPlay{
		vm:       vm,
		program:  program,
		name:     name,
		keys:     keys,
		presser:  NewPresser(vm.Input, HoldDuration),
		commands: make(chan Command, 16),
		stop:     make(chan bool),
	}
}

// AddToneRecorder adds a recorder that will be sent the state of the tone
// every frame. Only one recorder can be added.
func (trm *TermPlay) AddToneRecorder(rec gui.ToneRecorder) {
	trm.rec = rec
}

// Run the VM until the user quits or the VM fails.
func (trm *TermPlay) Run() error {
	trm.RawMode()
	trm.Print("%s%s", easyterm.HideCursor, easyterm.ClearScreen)
	defer func() {
		close(trm.stop)
		trm.Print("%s\r\n", easyterm.ShowCursor)
		trm.CleanUp()
		trm.lmtr.Stop()
	}()

	if geom := trm.Geometry(); geom.Cols > 0 && geom.Cols < display.Width {
		logger.Logf(logger.Allow, "termplay", "terminal is too narrow (%d columns)", geom.Cols)
	}

	go trm.read(os.Stdin)

	steps := trm.vm.Instance.Prefs.InstructionsPerFrame(int(trm.lmtr.Limit()))

	for !trm.quit && trm.request.Get() != govern.Ending {
		if err := trm.service(); err != nil {
			return err
		}

		if !trm.paused {
			if err := trm.vm.RunForCycles(steps, nil); err != nil {
				return err
			}
		}

		if trm.rec != nil {
			if err := trm.rec.SetTone(!trm.paused && trm.vm.SoundTimerNonZero()); err != nil {
				return err
			}
		}

		trm.render()
		trm.lmtr.CheckFrame()
	}

	return nil
}

// read from the input terminal until an error or until Run() has returned.
// The terminal is in raw mode so each read returns as soon as a key is
// pressed. After Run() has returned the goroutine remains blocked in the read
// until the next key press or the end of the input, and then exits.
func (trm *TermPlay) read(r io.Reader) {
	b := make([]byte, 32)
	for {
		n, err := r.Read(b)
		if err != nil {
			logger.Logf(logger.Allow, "termplay", "input: %v", err)
			trm.request.Set(govern.Ending)
			return
		}

		select {
		case <-trm.stop:
			return
		default:
		}

		for _, act := range Decode(b[:n]) {
			if act.Command == Key {
				if k, ok := trm.keys.Lookup(act.Name); ok {
					if err := trm.presser.Press(k); err != nil {
						logger.Log(logger.Allow, "termplay", err)
					}
				}
				continue
			}

			select {
			case trm.commands <- act.Command:
			case <-trm.stop:
				return
			}
		}
	}
}

// service commands sent by the reader goroutine.
func (trm *TermPlay) service() error {
	for {
		select {
		case cmd := <-trm.commands:
			if err := trm.command(cmd); err != nil {
				return err
			}
		default:
			// keys pressed while paused still reach the keypad
			if trm.paused {
				trm.vm.Input.Process()
			}
			return nil
		}
	}
}

func (trm *TermPlay) command(cmd Command) error {
	switch cmd {
	case Quit:
		trm.quit = true
	case Pause:
		trm.paused = !trm.paused
		trm.drawn = false
	case Reset:
		trm.vm.Reset()
		return trm.vm.LoadProgram(trm.program)
	}
	return nil
}

// render the framebuffer and status line if the frame has changed.
func (trm *TermPlay) render() {
	frame := trm.vm.Framebuffer()
	if trm.drawn && frame == trm.frame {
		return
	}
	trm.frame = frame
	trm.drawn = true

	status := fmt.Sprintf("%s - %s", version.ApplicationName, trm.name)
	if trm.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}

	s := strings.Builder{}
	s.WriteString(easyterm.CursorHome)
	s.WriteString(strings.ReplaceAll(Render(frame), "\n", "\r\n"))
	s.WriteString(status)
	s.WriteString(easyterm.ClearLine)
	s.WriteString("\r\n")
	s.WriteString(trm.vm.String())
	s.WriteString(easyterm.ClearLine)

	trm.Print("%s", s.String())
}
