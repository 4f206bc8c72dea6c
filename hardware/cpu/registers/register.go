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

// Register is an 8-bit general purpose register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		label: label,
		value: val,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the sum exceeded 255.
func (r *Register) Add(val uint8) (carry bool) {
	sum := uint16(r.value) + uint16(val)
	r.value = uint8(sum)
	return sum > 0xff
}

// Subtract value from register. Returns true if the register value was
// greater than or equal to val ie. no borrow occurred.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value >= val
	r.value -= val
	return noBorrow
}

// SubtractFrom sets the register to val minus the register value. Returns
// true if val was greater than or equal to the register value.
func (r *Register) SubtractFrom(val uint8) (noBorrow bool) {
	noBorrow = val >= r.value
	r.value = val - r.value
	return noBorrow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// LSR shifts register one bit to the right. Returns the least significant
// bit as it was before the shift.
func (r *Register) LSR() bool {
	lsb := r.value&0x01 == 0x01
	r.value >>= 1
	return lsb
}

// ASL shifts register one bit to the left. Returns the most significant bit
// as it was before the shift.
func (r *Register) ASL() bool {
	msb := r.value&0x80 == 0x80
	r.value <<= 1
	return msb
}
