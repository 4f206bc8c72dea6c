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

package display

import (
	"strings"
)

// Dimensions of the framebuffer in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the framebuffer. Each row is stored as a 64-bit value
// with the leftmost pixel in the most significant bit.
type Frame [Height]uint64

// Pixel returns true if the pixel at x, y is lit. Coordinates outside the
// frame wrap around.
func (f Frame) Pixel(x int, y int) bool {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return f[y]&(1<<(Width-1-x)) != 0
}

// Lit returns the number of lit pixels in the frame.
func (f Frame) Lit() int {
	n := 0
	for _, row := range f {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

// String returns the frame as text. Lit pixels are drawn with the '#'
// character.
func (f Frame) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.Pixel(x, y) {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Framebuffer is the display memory of the VM.
type Framebuffer struct {
	frame Frame
}

// Clear all pixels.
func (fb *Framebuffer) Clear() {
	fb.frame = Frame{}
}

// Draw the sprite at x, y. The coordinates are reduced modulo the width and
// height of the framebuffer. Returns true if any lit pixel was turned off.
func (fb *Framebuffer) Draw(x uint8, y uint8, sprite []uint8) (collision bool) {
	for r, b := range sprite {
		row := (int(y) + r) % Height
		for c := 0; c < 8; c++ {
			if b&(0x80>>c) == 0 {
				continue
			}
			col := (int(x) + c) % Width
			mask := uint64(1) << (Width - 1 - col)
			if fb.frame[row]&mask != 0 {
				collision = true
			}
			fb.frame[row] ^= mask
		}
	}
	return collision
}

// Frame returns a copy of the framebuffer.
func (fb *Framebuffer) Frame() Frame {
	return fb.frame
}
