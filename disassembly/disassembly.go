// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Decode the instruction at the address. The operand bytes of an instruction
// at the top of memory are read from the bottom of memory.
func Decode(mem cpubus.Memory, address uint16) Entry {
	defn := instructions.Lookup(mem.Read(address))

	r := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Final:     true,
	}

	switch defn.Bytes {
	case 2:
		r.InstructionData = uint16(mem.Read(address + 1))
	case 3:
		lo := mem.Read(address + 1)
		hi := mem.Read(address + 2)
		r.InstructionData = (uint16(hi) << 8) | uint16(lo)
	}

	return newEntry(r)
}

// Disassemble the memory between from and to inclusive. The last instruction
// may extend beyond the to address. If from is greater than to then the
// disassembly wraps around the top of memory.
func Disassemble(mem cpubus.Memory, from uint16, to uint16) []Entry {
	var entries []Entry

	// the number of bytes in the region. an int so that the entire address
	// space can be represented
	remaining := int(to-from) + 1

	address := from
	for remaining > 0 {
		e := Decode(mem, address)
		entries = append(entries, e)

		n := e.Result.Defn.Bytes
		address += uint16(n)
		remaining -= n
	}

	return entries
}
