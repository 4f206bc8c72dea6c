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

package registers

import "fmt"

// AddressMask is applied to all addresses.
const AddressMask = 0x0fff

// Index is the 16-bit I register.
type Index struct {
	value uint16
}

func (i Index) String() string {
	return fmt.Sprintf("I=%03x", i.value)
}

// Label returns an identifying string for the index register.
func (i Index) Label() string {
	return "I"
}

// Value returns the full 16-bit value of the register.
func (i Index) Value() uint16 {
	return i.value
}

// Address returns the value of the register masked to 12 bits.
func (i Index) Address() uint16 {
	return i.value & AddressMask
}

// Load value into the index register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add value to the index register. The full 16 bits of the register are
// kept and the flag register is not affected.
func (i *Index) Add(val uint8) {
	i.value += uint16(val)
}
