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

package instance_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/test"
)

type clock struct{ cycles uint64 }

func (c *clock) Cycles() uint64 { return c.cycles }

func TestPermission(t *testing.T) {
	ins := instance.NewInstance(nil, nil)
	test.ExpectSuccess(t, ins.AllowLogging())

	ins.Label = instance.Performance
	test.ExpectFailure(t, ins.AllowLogging())
}

func TestSeed(t *testing.T) {
	ca := &clock{}
	cb := &clock{}
	a := instance.NewInstance(ca, nil)
	b := instance.NewInstance(cb, nil)

	// changing the seed preference reseeds the random number generator
	test.ExpectSuccess(t, a.Prefs.Seed.Set(42))
	test.ExpectSuccess(t, b.Prefs.Seed.Set(42))
	for i := 0; i < 16; i++ {
		ca.cycles++
		cb.cycles++
		test.ExpectEquality(t, a.Random.Rewindable(256), b.Random.Rewindable(256))
	}
}

func TestNormalise(t *testing.T) {
	ins := instance.NewInstance(&clock{}, nil)
	test.ExpectSuccess(t, ins.Prefs.Speed.Set(100))
	ins.Normalise()
	test.ExpectSuccess(t, ins.Random.ZeroSeed)
	test.ExpectEquality(t, ins.Prefs.Speed.Get().(int), 700)
}
