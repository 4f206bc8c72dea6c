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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestOutcome(t *testing.T) {
	test.ExpectEquality(t, execution.Normal.Advance(), 2)
	test.ExpectEquality(t, execution.Skip.Advance(), 4)
	test.ExpectEquality(t, execution.Transferred.Advance(), 0)
	test.ExpectEquality(t, execution.Skip.String(), "skip")
}

func TestResult(t *testing.T) {
	ins := instructions.Decode(0x6005)
	r := execution.Result{
		Address:     0x200,
		Instruction: ins,
		Defn:        instructions.Lookup(ins),
		Outcome:     execution.Normal,
		Final:       true,
	}
	test.ExpectEquality(t, r.String(), "200  6005  LD V0, $05")

	r.Final = false
	test.ExpectEquality(t, r.String(), "200  6005  LD V0, $05 (incomplete)")
}
