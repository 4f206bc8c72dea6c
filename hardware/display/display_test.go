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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDraw(t *testing.T) {
	var fb display.Framebuffer

	// the glyph for zero
	zero := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	test.ExpectFailure(t, fb.Draw(0, 0, zero))
	f := fb.Frame()
	test.ExpectSuccess(t, f.Pixel(0, 0))
	test.ExpectSuccess(t, f.Pixel(3, 0))
	test.ExpectFailure(t, f.Pixel(4, 0))
	test.ExpectSuccess(t, f.Pixel(0, 1))
	test.ExpectFailure(t, f.Pixel(1, 1))
	test.ExpectEquality(t, f.Lit(), 14)

	// drawing the same sprite again erases it and reports a collision
	test.ExpectSuccess(t, fb.Draw(0, 0, zero))
	test.ExpectEquality(t, fb.Frame(), display.Frame{})
}

func TestCollisionOnlyWhenTurnedOff(t *testing.T) {
	var fb display.Framebuffer
	test.ExpectFailure(t, fb.Draw(0, 0, []uint8{0x80}))

	// a sprite that does not overlap any lit pixel is not a collision
	test.ExpectFailure(t, fb.Draw(1, 0, []uint8{0x80}))

	// partial overlap is a collision
	test.ExpectSuccess(t, fb.Draw(0, 0, []uint8{0xc0}))
	f := fb.Frame()
	test.ExpectFailure(t, f.Pixel(0, 0))
	test.ExpectFailure(t, f.Pixel(1, 0))
}

func TestWrap(t *testing.T) {
	var fb display.Framebuffer

	// sprite at the bottom right corner wraps to the other edges
	fb.Draw(62, 31, []uint8{0xf0, 0xf0})
	f := fb.Frame()
	test.ExpectSuccess(t, f.Pixel(62, 31))
	test.ExpectSuccess(t, f.Pixel(63, 31))
	test.ExpectSuccess(t, f.Pixel(0, 31))
	test.ExpectSuccess(t, f.Pixel(1, 31))
	test.ExpectSuccess(t, f.Pixel(62, 0))
	test.ExpectSuccess(t, f.Pixel(1, 0))
	test.ExpectEquality(t, f.Lit(), 8)

	// starting coordinates are reduced modulo the frame size
	fb.Clear()
	fb.Draw(64+5, 32+2, []uint8{0x80})
	test.ExpectSuccess(t, fb.Frame().Pixel(5, 2))

	// pixel coordinates outside the frame wrap too
	test.ExpectSuccess(t, fb.Frame().Pixel(-59, 34))
}

func TestString(t *testing.T) {
	var fb display.Framebuffer
	fb.Draw(0, 0, []uint8{0xa0})
	lines := strings.Split(fb.Frame().String(), "\n")
	test.DemandEquality(t, len(lines), display.Height+1)
	test.ExpectEquality(t, lines[0], "#.#"+strings.Repeat(".", display.Width-3))
	test.ExpectEquality(t, lines[1], strings.Repeat(".", display.Width))
}
