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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	var kp input.Keypad
	test.ExpectEquality(t, kp.String(), "................")

	_, ok := kp.Lowest(0)
	test.ExpectFailure(t, ok)

	kp[0x0] = true
	kp[0x5] = true
	kp[0xf] = true
	test.ExpectEquality(t, kp.String(), "0....5.........F")
	test.ExpectSuccess(t, kp.Pressed(0x5))
	test.ExpectSuccess(t, kp.Pressed(0x15))
	test.ExpectFailure(t, kp.Pressed(0x6))

	k, ok := kp.Lowest(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0)

	k, ok = kp.Lowest(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 5)
}

func TestInput(t *testing.T) {
	inp := input.NewInput()
	inp.HandleEvent(input.Event{Key: 0xa, Pressed: true})
	test.ExpectSuccess(t, inp.Keypad().Pressed(0xa))

	// pushed events are not applied until processed
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x3, Pressed: true}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0xa, Pressed: false}))
	test.ExpectFailure(t, inp.Keypad().Pressed(0x3))
	inp.Process()
	test.ExpectSuccess(t, inp.Keypad().Pressed(0x3))
	test.ExpectFailure(t, inp.Keypad().Pressed(0xa))

	inp.Release()
	test.ExpectEquality(t, inp.Keypad(), input.Keypad{})
}

func TestQueueFull(t *testing.T) {
	inp := input.NewInput()

	var err error
	for i := 0; i < 100 && err == nil; i++ {
		err = inp.PushEvent(input.Event{Key: uint8(i), Pressed: true})
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))
}
