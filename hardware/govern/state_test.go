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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/govern"
	"github.com/jetsetilly/gopher8/test"
)

func TestRequest(t *testing.T) {
	var r govern.Request
	test.ExpectEquality(t, r.Get(), govern.Running)

	r.Set(govern.Paused)
	test.ExpectEquality(t, r.Get(), govern.Paused)

	r.Set(govern.Ending)
	test.ExpectEquality(t, r.Get(), govern.Ending)
	test.ExpectEquality(t, r.Get().String(), "Ending")
}
