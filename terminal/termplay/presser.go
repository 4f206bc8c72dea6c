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


package termplay

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
)

// HoldDuration is how long a key is held after it has been pressed. About six
// frames.
const HoldDuration = 100 * time.Millisecond

// Presser pushes key presses to an Input and releases them once the hold
// duration has elapsed. Pressing a key that is already held extends the hold.
//
// Press() can be called from any goroutine. Events reach the keypad when the
// goroutine that owns the VM calls Input.Process().
type Presser struct {
	inp  *input.Input
	hold time.Duration

	// generation of the most recent press of each key. a release is only
	// pushed if no press has happened since the release was scheduled
	mu  sync.Mutex
	gen [input.NumKeys]int
}

// NewPresser is the preferred method of initialisation for the Presser type.
func NewPresser(inp *input.Input, hold time.Duration) *Presser {
	return &Presser{
		inp:  inp,
		hold: hold,
	}
}

// Press the keypad key and schedule its release.
func (p *Presser) Press(key uint8) error {
	key &= 0x0f

	p.mu.Lock()
	p.gen[key]++
	gen := p.gen[key]
	p.mu.Unlock()

	err := p.inp.PushEvent(input.Event{Key: key, Pressed: true})
	if err != nil {
		return err
	}

	time.AfterFunc(p.hold, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.gen[key] != gen {
			return
		}
		err := p.inp.PushEvent(input.Event{Key: key, Pressed: false})
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
		}
	})

	return nil
}
