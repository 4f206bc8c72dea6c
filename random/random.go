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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of the time value used by Rewindable().
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// VM.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// a non-zero seed replaces the base seed
	seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the source of the time value. Used by the VM when it
// creates the Random instance before the VM itself exists.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

// SetSeed sets the seed used in place of the base seed. A value of zero
// returns to using the base seed.
func (rnd *Random) SetSeed(seed int64) {
	rnd.seed = seed
}

func (rnd *Random) base() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	if rnd.seed != 0 {
		return rnd.seed
	}
	return baseSeed
}

func (rnd *Random) cycles() int64 {
	if rnd.clock == nil {
		return 0
	}
	return int64(rnd.clock.Cycles())
}

// Rewindable returns a random number in the range 0 to n-1. The number
// returned is the same for the same cycle count and seed.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.base() + rnd.cycles())).Intn(n)
}
