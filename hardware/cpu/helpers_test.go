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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// step executes one instruction and checks the result for validity
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	mc.Step()
	err := mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// newTestCPU returns a CPU with memory cleared and the PC at origin
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xff)
	mc.PC.Load(origin)
	return mc, mem
}
