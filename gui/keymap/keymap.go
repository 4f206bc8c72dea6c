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

// Package keymap maps the keys of a host keyboard to the sixteen keys of the
// CHIP-8 keypad.
//
// The keypad is laid out as follows:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// Host keys are identified by name. Key names are the lower case character
// printed on the key. All hosts must convert their own key representation to
// a name before calling Lookup().
package keymap

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownLayout is returned by NewKeymap() when the layout is not recognised.
const UnknownLayout = "keymap: unknown layout (%s)"

// List of layout names.
const (
	// the block of keys to the right of the keyboard
	Original = "original"

	// the block of keys to the left of the keyboard
	Conventional = "conventional"
)

// Layouts is the list of available layouts. The first entry is the default.
var Layouts = []string{Original, Conventional}

// the keypad keys in the order they appear in the layout rows
var keypad = [16]uint8{
	0x1, 0x2, 0x3, 0xc,
	0x4, 0x5, 0x6, 0xd,
	0x7, 0x8, 0x9, 0xe,
	0xa, 0x0, 0xb, 0xf,
}

// host key names for each position in the keypad array
var layouts = map[string][16]string{
	Original: {
		"7", "8", "9", "0",
		"u", "i", "o", "p",
		"j", "k", "l", ";",
		"m", ",", ".", "/",
	},
	Conventional: {
		"1", "2", "3", "4",
		"q", "w", "e", "r",
		"a", "s", "d", "f",
		"z", "x", "c", "v",
	},
}

// IsLayout returns true if the name is a valid layout.
func IsLayout(layout string) bool {
	_, ok := layouts[strings.ToLower(layout)]
	return ok
}

// Keymap is a single keyboard layout.
type Keymap struct {
	layout string
	keys   map[string]uint8
	names  [16]string
}

// NewKeymap is the preferred method of initialisation for the Keymap type.
func NewKeymap(layout string) (*Keymap, error) {
	layout = strings.ToLower(layout)

	l, ok := layouts[layout]
	if !ok {
		return nil, curated.Errorf(UnknownLayout, layout)
	}

	km := &Keymap{
		layout: layout,
		keys:   make(map[string]uint8),
	}

	for i, n := range l {
		km.keys[n] = keypad[i]
		km.names[keypad[i]] = n
	}

	return km, nil
}

// Layout returns the name of the layout.
func (km *Keymap) Layout() string {
	return km.layout
}

// Lookup returns the keypad key for the host key name.
func (km *Keymap) Lookup(name string) (uint8, bool) {
	k, ok := km.keys[strings.ToLower(name)]
	return k, ok
}

// Name returns the host key name for the keypad key.
func (km *Keymap) Name(key uint8) string {
	return km.names[key&0x0f]
}

// Names returns the host key names of every key in the layout.
func (km *Keymap) Names() []string {
	l := layouts[km.layout]
	return l[:]
}

// String returns a help grid showing the host key for each keypad key.
func (km *Keymap) String() string {
	s := strings.Builder{}
	for i, k := range keypad {
		s.WriteString(fmt.Sprintf("%X=%s", k, km.names[k]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	return s.String()
}
