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

// Package input handles the state of the sixteen key keypad.
//
// The Keypad type is the state of all sixteen keys at a single moment. It is
// a value type and is passed to the VM at every step.
//
// The Input type maintains the Keypad state on behalf of a host. Events from
// the host's own goroutine should be given to HandleEvent(). Events that
// arrive from a different goroutine (an SDL event loop or a terminal reader
// for example) should be given to PushEvent(). Pushed events are queued and
// applied by the next call to Process(), which must be called from the
// goroutine that owns the VM.
package input
