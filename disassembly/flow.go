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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// flowDisassembly follows every path through the program from the origin.
// the flow pass does not follow paths outside the program.
//
// some programs modify themselves or jump with JP V0, $NNN. the paths these
// programs take will not be blessed.
func (dsm *Disassembly) flowDisassembly() {
	pending := []uint16{dsm.origin}

	for len(pending) > 0 {
		a := pending[len(pending)-1] & memorymap.AddressMask
		pending = pending[:len(pending)-1]

		if !dsm.inProgram(a) {
			continue
		}

		// already blessed
		if !dsm.put(a, EntryLevelBlessed) {
			continue
		}

		ins := dsm.decode(a)
		defn := instructions.Lookup(ins)

		switch defn.Operator {
		case instructions.Jump:
			pending = append(pending, ins.NNN)
		case instructions.Call:
			pending = append(pending, a+2, ins.NNN)
		case instructions.Return:
		case instructions.JumpOffset:
		case instructions.SkipKeyPressed, instructions.SkipKeyNotPressed:
			pending = append(pending, a+2, a+4)
		default:
			if defn.Effect == instructions.Skip {
				pending = append(pending, a+2, a+4)
			} else {
				pending = append(pending, a+2)
			}
		}
	}
}
