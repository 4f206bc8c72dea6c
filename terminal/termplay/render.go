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


package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// each character of output covers two rows of pixels
var blocks = [4]rune{' ', '▀', '▄', '█'}

// Render the frame as text. Each line of text covers two rows of pixels so the
// frame is drawn in display.Width columns and display.Height/2 lines.
func Render(frame display.Frame) string {
	s := strings.Builder{}
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			b := 0
			if frame.Pixel(x, y) {
				b |= 0x01
			}
			if frame.Pixel(x, y+1) {
				b |= 0x02
			}
			s.WriteRune(blocks[b])
		}
		s.WriteByte('\n')
	}
	return s.String()
}
