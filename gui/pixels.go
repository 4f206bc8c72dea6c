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

package gui

import (
	"image/color"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// colours of lit and unlit pixels
var (
	PixelOn  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xe0, A: 0xff}
	PixelOff = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
)

// PixelDepth is the number of bytes for each pixel in the slice returned by
// RGBA.
const PixelDepth = 4

// RGBA converts the frame to RGBA pixel data, one VM pixel per host pixel.
// The dst slice is reused if it is large enough.
func RGBA(frame display.Frame, dst []uint8) []uint8 {
	sz := display.Width * display.Height * PixelDepth
	if len(dst) < sz {
		dst = make([]uint8, sz)
	}
	dst = dst[:sz]

	i := 0
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			c := PixelOff
			if frame.Pixel(x, y) {
				c = PixelOn
			}
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += PixelDepth
		}
	}

	return dst
}
