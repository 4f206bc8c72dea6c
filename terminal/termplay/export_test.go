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
	"io"

	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/govern"
)

// NewInputOnly returns a TermPlay that has not been attached to a terminal.
func NewInputOnly(vm *hardware.VM, keys *keymap.Keymap) *TermPlay {
	return newTermPlay(vm, keys, "test", nil)
}

// Read runs the input reader on the io.Reader until it returns.
func (trm *TermPlay) Read(r io.Reader) {
	trm.read(r)
}

// Stop signals that Run() has returned.
func (trm *TermPlay) Stop() {
	close(trm.stop)
}

// Commands returns the channel of decoded host commands.
func (trm *TermPlay) Commands() chan Command {
	return trm.commands
}

// Requested returns the state requested by the reader.
func (trm *TermPlay) Requested() govern.State {
	return trm.request.Get()
}
