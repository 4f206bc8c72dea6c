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

package govern

import "sync/atomic"

// State indicates the VM's state.
type State int

// List of possible VM states.
//
// Initialising is the default state and should never be entered once the VM
// has begun. Returning Initialising from a continue check stops the Run()
// loop in the same way as Ending, except that the host intends to start the
// VM again. For example, after a new program has been loaded.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return ""
}

// Request is a state that can be set from any goroutine and read by the
// continue check of the goroutine that owns the VM.
type Request struct {
	state atomic.Int32
}

// Set the requested state.
func (r *Request) Set(s State) {
	r.state.Store(int32(s))
}

// Get the requested state. The zero value of Request returns Running.
func (r *Request) Get() State {
	s := State(r.state.Load())
	if s == Initialising {
		return Running
	}
	return s
}
