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

package execution

// Outcome describes what happens to the program counter at the end of the
// instruction.
type Outcome int

// List of valid Outcome values.
const (
	// the program counter advances to the next instruction
	Normal Outcome = iota

	// the program counter advances over the next instruction
	Skip

	// the program counter has been set by the instruction (a jump, call or
	// return) or deliberately left unchanged (waiting for a key)
	Transferred
)

func (o Outcome) String() string {
	switch o {
	case Normal:
		return "normal"
	case Skip:
		return "skip"
	case Transferred:
		return "transferred"
	}
	return "unknown outcome"
}

// Advance returns the number of bytes the program counter should be
// advanced by for the outcome.
func (o Outcome) Advance() uint16 {
	switch o {
	case Normal:
		return 2
	case Skip:
		return 4
	}
	return 0
}
