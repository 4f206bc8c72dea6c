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

package input

import (
	"github.com/jetsetilly/gopher8/curated"
)

// QueueFull is returned by PushEvent() when the event cannot be queued.
const QueueFull = "input: pushed event queue is full: key %X dropped"

// size of the pushed event queue
const queueSize = 64

// Event is a change of state for a single key.
type Event struct {
	Key     uint8
	Pressed bool
}

// Input maintains the keypad state for a host.
type Input struct {
	state  Keypad
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		pushed: make(chan Event, queueSize),
	}
}

// HandleEvent applies the event to the keypad state immediately.
func (inp *Input) HandleEvent(ev Event) {
	inp.state[ev.Key&0x0f] = ev.Pressed
}

// PushEvent queues an event from another goroutine. The event is dropped and
// an error returned if the queue is full.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull, ev.Key&0x0f)
	}
	return nil
}

// Process applies all queued events to the keypad state.
func (inp *Input) Process() {
	for {
		select {
		case ev := <-inp.pushed:
			inp.HandleEvent(ev)
		default:
			return
		}
	}
}

// Keypad returns the current keypad state.
func (inp *Input) Keypad() Keypad {
	return inp.state
}

// Release all keys. Queued events are discarded.
func (inp *Input) Release() {
	inp.Process()
	inp.state = Keypad{}
}
