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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is retained by the error and is used to identify it. Patterns
// should be stored as suitably named const strings in the package that creates
// the error. For example, the memory package defines:
//
//	const LoadError = "load error: %v"
//
// and callers check for it with the Is() function:
//
//	if curated.Is(err, memory.LoadError) {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, which is useful when a curated error has been
// wrapped by another curated error.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts of the chain. Parts are separated by the sub-string ": ". The
// practical advantage is that a function does not need to worry about whether
// the error it is about to wrap already carries the same context. For example:
//
//	e := curated.Errorf("vm: %v", curated.Errorf("vm: stack fault"))
//
// prints as "vm: stack fault" and not "vm: vm: stack fault".
//
// Curated errors also work with the errors package in the standard library.
// Any error value given as a placeholder is returned by Unwrap().
package curated
