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

// Package hardware is the base package for the CHIP-8 VM. The VM type ties
// together the CPU, memory, display, timers and input of the machine.
//
// The VM has no clock of its own. Each call to Step() executes exactly one
// instruction and decrements the timers once. Hosts decide how many steps
// to take per frame, usually with the help of the Speed preference.
//
// The Run() function is a convenience for hosts that run the VM in a loop.
// Input for Run() comes from the Input field of the VM, which can be fed
// from another goroutine with Input.PushEvent().
package hardware
