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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestSuccessAndFailure(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))

	var err error
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, err)
	test.DemandFailure(t, fmt.Errorf("test"))
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, uint8(0xff), 0xff)
	test.ExpectEquality(t, "abc", "abc", "tag")
	test.ExpectInequality(t, uint16(0x200), 0x202)
	test.DemandEquality(t, true, true)
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(w, "hello %s", "world")
	test.ExpectSuccess(t, w.Compare("hello world"))
	test.ExpectEquality(t, w.String(), "hello world")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
