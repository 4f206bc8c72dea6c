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

package input

import "strings"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the pressed state of each key, indexed by key value.
type Keypad [NumKeys]bool

// Pressed returns true if the key is pressed. Only the low nibble of key is
// used.
func (kp Keypad) Pressed(key uint8) bool {
	return kp[key&0x0f]
}

// Lowest returns the lowest numbered pressed key that is not lower than
// from. The second return value is false if no such key is pressed.
func (kp Keypad) Lowest(from uint8) (uint8, bool) {
	for k := int(from); k < NumKeys; k++ {
		if kp[k] {
			return uint8(k), true
		}
	}
	return 0, false
}

func (kp Keypad) String() string {
	s := strings.Builder{}
	for k, p := range kp {
		if p {
			s.WriteByte("0123456789ABCDEF"[k])
		} else {
			s.WriteByte('.')
		}
	}
	return s.String()
}
