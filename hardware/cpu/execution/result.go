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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed
// by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the decoded instruction and its definition
	Instruction instructions.Instruction
	Defn        instructions.Definition

	// the effect on the program counter
	Outcome Outcome

	// whether the instruction completed. an instruction that faults is not
	// final
	Final bool
}

func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%03x  %s  %s (incomplete)", r.Address, r.Instruction, r.Defn.Format(r.Instruction))
	}
	return fmt.Sprintf("%03x  %s  %s", r.Address, r.Instruction, r.Defn.Format(r.Instruction))
}
