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

// Package ram implements a flat 64KiB memory area. It satisfies the
// cpubus.Memory interface and is the basis of every machine built by the
// hardware package.
package ram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// Size of the address space of the 6502.
const Size = 0x10000

// Sentinal error patterns.
const (
	ImageTooLarge = "ram: image of %d bytes does not fit at %#04x"
	EmptyImage    = "ram: image is empty"
)

// RAM is 64KiB of read/write memory with no mirroring or unmapped areas.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

// Read is an implementation of cpubus.Memory.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Peek returns the value at address. It is the same as Read() but is used by
// the debugging and tooling code to make the intent clear.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke sets the value at address.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.memory[address] = value
}

// Load copies data into memory starting at origin. The data must fit between
// origin and the top of memory.
func (ram *RAM) Load(origin uint16, data []byte) error {
	if len(data) == 0 {
		return curated.Errorf(EmptyImage)
	}
	if int(origin)+len(data) > Size {
		return curated.Errorf(ImageTooLarge, len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// SetVector writes address in little-endian order to the two bytes starting
// at vector.
func (ram *RAM) SetVector(vector uint16, address uint16) {
	ram.memory[vector] = uint8(address)
	ram.memory[vector+1] = uint8(address >> 8)
}

// Clear sets every byte of memory to zero.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// Dump returns a hex dump of the page containing address.
func (ram *RAM) Dump(address uint16) string {
	origin := address & 0xff00

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := uint16(0); y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (origin>>4)+y))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[origin+(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
