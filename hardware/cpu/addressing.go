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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// operand is the result of address resolution.
type operand struct {
	mode instructions.AddressingMode

	// the effective address. for relative addressing this is the branch
	// destination. unused for implied, accumulator and immediate modes
	address uint16

	// the value of the operand byte for immediate mode
	value uint8
}

// resolve reads the operand bytes of the instruction according to the
// addressing mode and returns the effective address. indirect modes read the
// pointer from memory.
func (mc *CPU) resolve(mode instructions.AddressingMode) operand {
	op := operand{mode: mode}

	switch mode {
	case instructions.Implied, instructions.Accumulator:
		// no operand bytes

	case instructions.Immediate:
		// the value is the next byte in the program. it is read once only
		op.address = mc.PC.Address()
		op.value = mc.read8BitPC(loByte)

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the offset
		// is signed and relative to the PC after the operand has been read
		offset := mc.read8BitPC(loByte)
		op.address = mc.PC.Address() + uint16(int8(offset))

	case instructions.ZeroPage:
		op.address = uint16(mc.read8BitPC(loByte))

	case instructions.ZeroPageIndexedX:
		// the index does not carry into the next page
		op.address = uint16(mc.read8BitPC(loByte) + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		op.address = uint16(mc.read8BitPC(loByte) + mc.Y.Value())

	case instructions.Absolute:
		op.address = mc.read16BitPC()

	case instructions.AbsoluteIndexedX:
		op.address = mc.read16BitPC() + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		op.address = mc.read16BitPC() + mc.Y.Address()

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		pointer := mc.read16BitPC()

		if mc.IndirectJMPBug && pointer&0x00ff == 0x00ff {
			// the high byte of the address is read from the start of the same
			// page as the low byte
			lo := mc.read8Bit(pointer)
			hi := mc.read8Bit(pointer & 0xff00)
			op.address = (uint16(hi) << 8) | uint16(lo)
		} else {
			op.address = mc.read16Bit(pointer)
		}

	case instructions.IndexedIndirect: // x indexing
		pointer := mc.read8BitPC(loByte) + mc.X.Value()
		op.address = mc.read16BitZeroPage(pointer)

	case instructions.IndirectIndexed: // y indexing
		pointer := mc.read8BitPC(loByte)
		op.address = mc.read16BitZeroPage(pointer) + mc.Y.Address()
	}

	return op
}

// fetch returns the value of the operand. for memory operands this is a read
// of the effective address
func (mc *CPU) fetch(op operand) uint8 {
	switch op.mode {
	case instructions.Accumulator:
		return mc.A.Value()
	case instructions.Immediate:
		return op.value
	}
	return mc.read8Bit(op.address)
}

// store writes the value to the operand. for the accumulator addressing mode
// the value is loaded into the A register
func (mc *CPU) store(op operand, v uint8) {
	if op.mode == instructions.Accumulator {
		mc.A.Load(v)
		return
	}
	mc.write8Bit(op.address, v)
}
