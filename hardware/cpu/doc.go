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

// Package cpu emulates the NMOS 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The Memory interface defines
// the memory operations required by the CPU.
//
// The bread-and-butter of the CPU type is the Step() function, which executes
// exactly one instruction. There is no cycle counting. Let's assume mem is an
// instance of the Memory interface loaded with 6502 instructions and a reset
// vector.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		mc.Step()
//	}
//
// Interrupts are never raised by the CPU itself. The host must decide when an
// interrupt has occurred and call IRQ() or NMI() between calls to Step(). IRQ()
// does nothing if the interrupt disable flag is set.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers and for tracing.
//
// Every one of the 256 opcodes is defined. Undocumented opcodes are executed
// as no-ops that consume the same number of bytes as the real instruction.
package cpu
