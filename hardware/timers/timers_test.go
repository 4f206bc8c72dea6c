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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

func TestTimers(t *testing.T) {
	var tmr timers.Timers
	test.ExpectFailure(t, tmr.SoundActive())

	// ticking at zero has no effect
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 0)

	tmr.SetDelay(2)
	tmr.SetSound(1)
	test.ExpectSuccess(t, tmr.SoundActive())
	test.ExpectEquality(t, tmr.String(), "DT=02 ST=01")

	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), 1)
	test.ExpectEquality(t, tmr.Sound(), 0)
	test.ExpectFailure(t, tmr.SoundActive())

	tmr.Tick()
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 0)

	tmr.SetDelay(10)
	tmr.Reset()
	test.ExpectEquality(t, tmr.Delay(), 0)
}
