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


package termplay

import (
	"github.com/jetsetilly/gopher8/terminal/easyterm"
)

// Command is a host action decoded from terminal input.
type Command int

// List of valid Command values.
const (
	NoCommand Command = iota
	Key
	Quit
	Pause
	Reset
)

// Action is a single decoded keystroke. Name is only valid for the Key
// command.
type Action struct {
	Command Command
	Name    string
}

// the escape sequence for the F5 key
var functionF5 = []byte{easyterm.KeyEsc, easyterm.EscCursor, '1', '5', '~'}

// Decode the bytes from a single read of the input terminal. A lone escape
// character quits, as does the interrupt character. F1 pauses and F5 resets.
// Unrecognised escape sequences are ignored.
func Decode(b []byte) []Action {
	var acts []Action

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
			acts = append(acts, Action{Command: Quit})

		case easyterm.KeyEsc:
			if i == len(b)-1 {
				acts = append(acts, Action{Command: Quit})
				continue
			}

			if hasPrefix(b[i:], functionF5) {
				acts = append(acts, Action{Command: Reset})
				i += len(functionF5) - 1
				continue
			}

			if i+2 < len(b) && b[i+1] == easyterm.EscFunction && b[i+2] == easyterm.FunctionF1 {
				acts = append(acts, Action{Command: Pause})
				i += 2
				continue
			}

			// skip the remainder of an unknown sequence. sequences end with
			// a character in the range 0x40 to 0x7e
			i++
			if i < len(b) && (b[i] == easyterm.EscCursor || b[i] == easyterm.EscFunction) {
				i++
				for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
					i++
				}
			}

		default:
			if b[i] > ' ' && b[i] < easyterm.KeyBackspace {
				acts = append(acts, Action{Command: Key, Name: string(b[i])})
			}
		}
	}

	return acts
}

func hasPrefix(b []byte, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}
