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

// Package logger is the central log for the whole application. It is
// intended for messages that are not errors, but which the user might want
// to inspect. For example, instructions that the CPU did not recognise.
//
// Entries have a tag and a detail string. Consecutive entries with the same
// tag and detail are compressed into a single entry with a repeat count.
//
// Log() and Logf() take a Permission argument. The Permission interface is
// implemented by hardware/instance.Instance, which means that a VM that is
// running as a secondary instance (a performance test or a disassembly pass
// for example) can be prevented from cluttering the log. The Allow value
// should be used when there is no instance to hand.
//
// Packages that want their own log (tests mostly) can create one with
// NewLogger().
package logger
