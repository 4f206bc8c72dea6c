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

package disassembly

import (
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/programloader"
)

// Disassembly represents the annotated disassembly of a CHIP-8 program.
type Disassembly struct {
	mem *memory.Memory

	// the program occupies the addresses from origin up to but not including
	// end
	origin uint16
	end    uint16

	// indexed by address
	reference [memorymap.Size]*Entry

	// the number of each type of entry
	counts map[EntryLevel]int
}

// FromLoader loads the program and returns its disassembly.
func FromLoader(ld programloader.Loader) (*Disassembly, error) {
	err := ld.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return FromProgram(ld.Data)
}

// FromProgram returns the disassembly of the program image.
func FromProgram(data []uint8) (*Disassembly, error) {
	dsm := &Disassembly{
		mem:    memory.NewMemory(),
		origin: memorymap.OriginProgram,
		counts: make(map[EntryLevel]int),
	}

	err := dsm.mem.Load(data)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	dsm.end = dsm.origin + uint16(len(data))

	dsm.linearDisassembly()
	dsm.flowDisassembly()

	return dsm, nil
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e := dsm.reference[address&memorymap.AddressMask]
	return e, e != nil
}

// NumEntries returns the number of entries at the specified level.
func (dsm *Disassembly) NumEntries(level EntryLevel) int {
	return dsm.counts[level]
}

// inProgram returns true if both bytes of the instruction at the address are
// inside the program
func (dsm *Disassembly) inProgram(address uint16) bool {
	return address >= dsm.origin && address < dsm.end
}

func (dsm *Disassembly) decode(address uint16) instructions.Instruction {
	return instructions.Decode(dsm.mem.ReadWord(address))
}

// put creates or updates the entry at the address. returns false if an entry
// already exists at the address at the same or higher level.
func (dsm *Disassembly) put(address uint16, level EntryLevel) bool {
	e := dsm.reference[address]
	if e != nil {
		if e.Level >= level {
			return false
		}
		dsm.counts[e.Level]--
		e.Level = level
		dsm.counts[level]++
		return true
	}

	dsm.reference[address] = newEntry(address, dsm.decode(address), level)
	dsm.counts[level]++
	return true
}

// Write the entries at or above the level to the output, in address order.
func (dsm *Disassembly) Write(output io.Writer, minLevel EntryLevel) {
	for _, e := range dsm.reference {
		if e != nil && e.Level >= minLevel {
			io.WriteString(output, e.String())
			io.WriteString(output, "\n")
		}
	}
}
