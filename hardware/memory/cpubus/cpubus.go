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

// Package cpubus defines the interface between the CPU and the memory system.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every device attached to the CPU implements this interface, either
// directly or by wrapping another Memory implementation and intercepting the
// addresses it is interested in.
//
// Read and Write are infallible from the CPU's point of view. An
// implementation that can fail must resolve the failure itself, for example by
// returning a sentinel value.
//
// Reads performed by the CPU during address resolution may be repeated. An
// implementation must not change its state merely because it has been read
// by the CPU resolving an address. This is particularly important for
// memory-mapped peripheral registers.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. The BRK
// instruction also uses this vector.
const IRQ = uint16(0xfffe)

// Stack is the address of the first byte of the stack page. The stack pointer
// is an offset into this page.
const Stack = uint16(0x0100)
