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


package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt = 3 // end-of-text character
	KeyEndOfFile = 4 // end-of-transmission character
	KeyTab       = 9
	KeyCarriage  = 13
	KeyEsc       = 27
	KeyBackspace = 127
)

// list of ASCII codes for characters that can follow KeyEsc
const (
	EscCursor   = 91
	EscFunction = 79
)

// list of ASCII codes for characters that can follow EscFunction
const (
	FunctionF1 = 'P'
	FunctionF2 = 'Q'
	FunctionF3 = 'R'
	FunctionF4 = 'S'
)

// ANSI sequences used to draw on the output terminal
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	ClearLine   = "\033[K"
)
