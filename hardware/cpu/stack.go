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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// StackFault is the pattern of the error returned by ExecuteInstruction() for
// a call when the stack is full or for a return when the stack is empty.
const StackFault = "cpu: stack %s at %03x"

// StackDepth is the maximum number of return addresses on the stack.
const StackDepth = 16

// Stack is the call stack. Entries are return addresses.
type Stack struct {
	entries [StackDepth]uint16
	sp      int
}

func (s Stack) String() string {
	if s.sp == 0 {
		return "SP=0 []"
	}
	e := make([]string, s.sp)
	for i := range e {
		e[i] = fmt.Sprintf("%03x", s.entries[i])
	}
	return fmt.Sprintf("SP=%d [%s]", s.sp, strings.Join(e, " "))
}

// Reset empties the stack.
func (s *Stack) Reset() {
	*s = Stack{}
}

// Depth returns the number of entries on the stack.
func (s Stack) Depth() int {
	return s.sp
}

// Entries returns a copy of the entries on the stack, oldest first.
func (s Stack) Entries() []uint16 {
	e := make([]uint16, s.sp)
	copy(e, s.entries[:s.sp])
	return e
}

// push the address. the stack is unchanged if it is already full.
func (s *Stack) push(address uint16, pc uint16) error {
	if s.sp >= StackDepth {
		return curated.Errorf(StackFault, "overflow", pc)
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// pop an address. the stack is unchanged if it is already empty.
func (s *Stack) pop(pc uint16) (uint16, error) {
	if s.sp == 0 {
		return 0, curated.Errorf(StackFault, "underflow", pc)
	}
	s.sp--
	return s.entries[s.sp], nil
}
