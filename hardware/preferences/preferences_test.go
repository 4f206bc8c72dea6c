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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.Speed.Get().(int), preferences.DefaultSpeed)
	test.ExpectEquality(t, p.Seed.Get().(int), 0)
	test.ExpectSuccess(t, p.LogUnrecognised.Get().(bool))
	test.ExpectEquality(t, p.String(), "vm.logunrecognised :: true\nvm.seed :: 0\nvm.speed :: 700\n")

	// no file to load from or save to
	test.ExpectFailure(t, p.Load())
	test.ExpectFailure(t, p.Save())
}

func TestSpeed(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectFailure(t, p.Speed.Set(0))
	test.ExpectEquality(t, p.Speed.Get().(int), preferences.DefaultSpeed)

	test.ExpectSuccess(t, p.Speed.Set(600))
	test.ExpectEquality(t, p.InstructionsPerFrame(60), 10)
	test.ExpectEquality(t, p.InstructionsPerFrame(0), 1)

	test.ExpectSuccess(t, p.Speed.Set(30))
	test.ExpectEquality(t, p.InstructionsPerFrame(60), 1)
}
