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

// Package cpu emulates the CHIP-8 interpreter. Every instruction is two bytes,
// read big-endian from the address in the program counter. The instruction
// word is decoded by the instructions package and the definition found for
// it is used to select a handler from the handler table.
//
// An instance of the CPU type requires an implementation of the
// cpubus.Memory interface, a Display and a Timers implementation. In the
// full VM these are the memory, display and timers packages.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is the state of the keypad for the duration of the
// instruction.
//
//	mc := cpu.NewCPU(ins, mem, fb, tmr)
//	mc.Reset()
//
//	for {
//		if err := mc.ExecuteInstruction(keys); err != nil {
//			return err
//		}
//	}
//
// Handlers return an execution.Outcome and the CPU advances the program
// counter according to that outcome. Only the handlers for the jump, call
// and return instructions change the program counter directly.
//
// The only error returned by ExecuteInstruction() is a StackFault. When a
// stack fault occurs the state of the CPU is exactly as it was before the
// instruction began.
//
// Instructions that are not recognised do nothing except advance the program
// counter. They are counted and, if the preferences allow, logged.
//
// The LastResult field records the instruction most recently executed. See
// the execution package for more information.
package cpu
