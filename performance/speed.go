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


package performance

// CalcSpeed takes the number of instructions executed and the duration (in
// seconds) and returns the instructions-per-second and how that compares to
// the requested speed as a percentage.
func CalcSpeed(numCycles uint64, duration float64, speed int) (ips float64, ratio float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(numCycles) / duration
	if speed > 0 {
		ratio = 100 * ips / float64(speed)
	}
	return ips, ratio
}
