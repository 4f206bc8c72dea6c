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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf(), which is
// useful when the value being tested is required for the remainder of the
// test to make sense. For example, testing the length of a slice before
// indexing it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors usually work in
// Go. It means that ExpectFailure() will fail when given an untyped nil.
//
// All functions accept an optional list of tags. The tags are printed as a
// prefix to any failure message and are useful in table driven tests to
// identify the failing entry.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output for comparison.
package test
