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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "V5")
	test.ExpectEquality(t, r.String(), "V5=00")
	test.ExpectEquality(t, r.Label(), "V5")

	// addition
	r.Load(0xf0)
	test.ExpectFailure(t, r.Add(0x0f))
	test.ExpectEquality(t, r.Value(), 0xff)
	test.ExpectSuccess(t, r.Add(0x01))
	test.ExpectEquality(t, r.Value(), 0x00)

	r.Load(200)
	test.ExpectSuccess(t, r.Add(100))
	test.ExpectEquality(t, r.Value(), 44)

	// subtraction
	r.Load(10)
	test.ExpectSuccess(t, r.Subtract(3))
	test.ExpectEquality(t, r.Value(), 7)
	test.ExpectSuccess(t, r.Subtract(7))
	test.ExpectEquality(t, r.Value(), 0)
	test.ExpectFailure(t, r.Subtract(1))
	test.ExpectEquality(t, r.Value(), 0xff)

	r.Load(3)
	test.ExpectSuccess(t, r.SubtractFrom(10))
	test.ExpectEquality(t, r.Value(), 7)
	r.Load(10)
	test.ExpectFailure(t, r.SubtractFrom(3))
	test.ExpectEquality(t, r.Value(), 249)
	r.Load(5)
	test.ExpectSuccess(t, r.SubtractFrom(5))
	test.ExpectEquality(t, r.Value(), 0)

	// logical operators
	r.Load(0x21)
	r.AND(0x01)
	test.ExpectEquality(t, r.Value(), 0x01)
	r.XOR(0xff)
	test.ExpectEquality(t, r.Value(), 0xfe)
	r.OR(0x01)
	test.ExpectEquality(t, r.Value(), 0xff)

	// shifts
	r.Load(0x81)
	test.ExpectSuccess(t, r.LSR())
	test.ExpectEquality(t, r.Value(), 0x40)
	test.ExpectFailure(t, r.LSR())
	test.ExpectEquality(t, r.Value(), 0x20)

	r.Load(0x81)
	test.ExpectSuccess(t, r.ASL())
	test.ExpectEquality(t, r.Value(), 0x02)
	test.ExpectFailure(t, r.ASL())
	test.ExpectEquality(t, r.Value(), 0x04)
}

func TestIndex(t *testing.T) {
	var i registers.Index
	test.ExpectEquality(t, i.Value(), 0)

	i.Load(0x0ffe)
	i.Add(0x03)
	test.ExpectEquality(t, i.Value(), 0x1001)
	test.ExpectEquality(t, i.Address(), 0x001)
	test.ExpectEquality(t, i.String(), "I=1001")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x200)
	test.ExpectEquality(t, pc.Address(), 0x200)

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x202)

	pc.Load(0x1ffe)
	test.ExpectEquality(t, pc.Address(), 0xffe)
	pc.Add(4)
	test.ExpectEquality(t, pc.Address(), 0x002)
	test.ExpectEquality(t, pc.String(), "002")
}
