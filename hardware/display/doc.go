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

// Package display implements the 64x32 monochrome framebuffer.
//
// Sprites are drawn with Draw(). Each byte of a sprite is one row of eight
// pixels, most significant bit on the left. Pixels are combined with the
// framebuffer with an exclusive-or and any pixel that is turned off by the
// operation is a collision. Sprites that extend beyond the right or bottom
// edges wrap around to the opposite edge.
//
// Hosts read the framebuffer through the Frame type, which is a copy of the
// framebuffer at a moment in time.
package display
