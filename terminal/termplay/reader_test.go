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


package termplay_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/govern"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/test"
)

func newInputOnly(t *testing.T) (*termplay.TermPlay, *hardware.VM) {
	t.Helper()
	ins := instance.NewInstance(nil, nil)
	ins.Normalise()
	vm, err := hardware.NewVM(ins)
	test.DemandSuccess(t, err)
	keys, err := keymap.NewKeymap(keymap.Original)
	test.DemandSuccess(t, err)
	return termplay.NewInputOnly(vm, keys), vm
}

func TestReaderEndOfInput(t *testing.T) {
	trm, vm := newInputOnly(t)

	// a key press followed by the end of the input. 'k' is keypad key 8 in
	// the original layout
	trm.Read(strings.NewReader("k"))
	test.ExpectEquality(t, trm.Requested(), govern.Ending)

	vm.Input.Process()
	test.ExpectSuccess(t, vm.Input.Keypad().Pressed(0x8))
}

func TestReaderCommands(t *testing.T) {
	trm, _ := newInputOnly(t)

	trm.Read(strings.NewReader("\033OP\033[15~"))
	test.DemandEquality(t, len(trm.Commands()), 2)
	test.ExpectEquality(t, <-trm.Commands(), termplay.Pause)
	test.ExpectEquality(t, <-trm.Commands(), termplay.Reset)
}

func TestReaderStops(t *testing.T) {
	trm, _ := newInputOnly(t)

	// more commands than the channel can hold and nothing receiving them.
	// the reader must not block once stopped
	input := strings.Repeat("\033OP", 64)

	done := make(chan bool)
	go func() {
		trm.Read(strings.NewReader(input))
		done <- true
	}()

	trm.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("reader did not stop")
	}
}
