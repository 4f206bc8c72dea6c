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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// LoadError is returned by Load() when the program does not fit in memory.
const LoadError = "memory: program of %d bytes is larger than the %d bytes available"

// Memory is the entire memory space of the VM.
type Memory struct {
	data [memorymap.Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears memory and copies the font to the font origin.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[memorymap.OriginFont:], Font[:])
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&memorymap.AddressMask]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address&memorymap.AddressMask] = data
}

// ReadWord returns the big-endian 16-bit value at the address. The address
// of the second byte is also masked.
func (mem *Memory) ReadWord(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

// Load copies the program to the program origin. The rest of memory is not
// changed. If the program is too large then a LoadError is returned and
// memory is not changed at all.
func (mem *Memory) Load(program []uint8) error {
	if len(program) > memorymap.MaxProgramSize {
		return curated.Errorf(LoadError, len(program), memorymap.MaxProgramSize)
	}
	copy(mem.data[memorymap.OriginProgram:], program)
	return nil
}

// Snapshot returns a copy of the memory space.
func (mem *Memory) Snapshot() [memorymap.Size]uint8 {
	return mem.data
}

// Dump returns a hex dump of the memory between the two addresses. The
// addresses are rounded out to the nearest sixteen byte boundaries.
func (mem *Memory) Dump(from uint16, to uint16) string {
	from &= memorymap.AddressMask &^ 0x0f
	to &= memorymap.AddressMask
	to |= 0x0f

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for a := uint32(from); a <= uint32(to); a += 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", a>>4))
		for x := uint32(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (mem *Memory) String() string {
	return mem.Dump(memorymap.OriginProgram, memorymap.OriginProgram+0x3f)
}
