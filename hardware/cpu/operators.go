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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// setNZ sets the sign and zero flags according to the value in the register
func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) nop(_ operand) {
}

// KIL halts a real 6502 until reset. it is treated as a no-op but noted in
// the log
func (mc *CPU) kil(_ operand) {
	logger.Logf(mc.LogPermission, "cpu", "KIL (%#02x) at %#04x treated as NOP", mc.LastResult.Defn.OpCode, mc.LastResult.Address)
}

// load and store

func (mc *CPU) lda(op operand) {
	mc.A.Load(mc.fetch(op))
	mc.setNZ(mc.A)
}

func (mc *CPU) ldx(op operand) {
	mc.X.Load(mc.fetch(op))
	mc.setNZ(mc.X)
}

func (mc *CPU) ldy(op operand) {
	mc.Y.Load(mc.fetch(op))
	mc.setNZ(mc.Y)
}

func (mc *CPU) sta(op operand) {
	mc.store(op, mc.A.Value())
}

func (mc *CPU) stx(op operand) {
	mc.store(op, mc.X.Value())
}

func (mc *CPU) sty(op operand) {
	mc.store(op, mc.Y.Value())
}

// register transfers. TXS is the only transfer that does not affect the flags

func (mc *CPU) tax(_ operand) {
	mc.X.Load(mc.A.Value())
	mc.setNZ(mc.X)
}

func (mc *CPU) tay(_ operand) {
	mc.Y.Load(mc.A.Value())
	mc.setNZ(mc.Y)
}

func (mc *CPU) tsx(_ operand) {
	mc.X.Load(mc.SP.Value())
	mc.setNZ(mc.X)
}

func (mc *CPU) txa(_ operand) {
	mc.A.Load(mc.X.Value())
	mc.setNZ(mc.A)
}

func (mc *CPU) txs(_ operand) {
	mc.SP.Load(mc.X.Value())
}

func (mc *CPU) tya(_ operand) {
	mc.A.Load(mc.Y.Value())
	mc.setNZ(mc.A)
}

// arithmetic

func (mc *CPU) adc(op operand) {
	v := mc.fetch(op)

	if mc.Status.DecimalMode && !mc.NoDecimal {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.setNZ(mc.A)
}

func (mc *CPU) sbc(op operand) {
	v := mc.fetch(op)

	if mc.Status.DecimalMode && !mc.NoDecimal {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.setNZ(mc.A)
}

// compare register with operand. the carry flag is set if the register is
// greater than or equal to the operand
func (mc *CPU) compare(r registers.Register, op operand) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(mc.fetch(op), true)
	mc.setNZ(mc.acc8)
}

func (mc *CPU) cmp(op operand) {
	mc.compare(mc.A, op)
}

func (mc *CPU) cpx(op operand) {
	mc.compare(mc.X, op)
}

func (mc *CPU) cpy(op operand) {
	mc.compare(mc.Y, op)
}

// logic

func (mc *CPU) and(op operand) {
	mc.A.AND(mc.fetch(op))
	mc.setNZ(mc.A)
}

func (mc *CPU) ora(op operand) {
	mc.A.ORA(mc.fetch(op))
	mc.setNZ(mc.A)
}

func (mc *CPU) eor(op operand) {
	mc.A.EOR(mc.fetch(op))
	mc.setNZ(mc.A)
}

func (mc *CPU) bit(op operand) {
	v := mc.fetch(op)
	mc.acc8.Load(mc.A.Value())
	mc.acc8.AND(v)
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = v&0x80 == 0x80
	mc.Status.Overflow = v&0x40 == 0x40
}

// shifts and rotates. these are read-modify-write instructions when the
// operand is in memory

func (mc *CPU) modify(op operand, f func(r *registers.Register)) {
	mc.acc8.Load(mc.fetch(op))
	f(&mc.acc8)
	mc.store(op, mc.acc8.Value())
	mc.setNZ(mc.acc8)
}

func (mc *CPU) asl(op operand) {
	mc.modify(op, func(r *registers.Register) {
		mc.Status.Carry = r.ASL()
	})
}

func (mc *CPU) lsr(op operand) {
	mc.modify(op, func(r *registers.Register) {
		mc.Status.Carry = r.LSR()
	})
}

func (mc *CPU) rol(op operand) {
	mc.modify(op, func(r *registers.Register) {
		mc.Status.Carry = r.ROL(mc.Status.Carry)
	})
}

func (mc *CPU) ror(op operand) {
	mc.modify(op, func(r *registers.Register) {
		mc.Status.Carry = r.ROR(mc.Status.Carry)
	})
}

// increment and decrement

func (mc *CPU) inc(op operand) {
	mc.modify(op, func(r *registers.Register) {
		r.Add(1, false)
	})
}

func (mc *CPU) dec(op operand) {
	mc.modify(op, func(r *registers.Register) {
		r.Add(0xff, false)
	})
}

func (mc *CPU) inx(_ operand) {
	mc.X.Add(1, false)
	mc.setNZ(mc.X)
}

func (mc *CPU) iny(_ operand) {
	mc.Y.Add(1, false)
	mc.setNZ(mc.Y)
}

func (mc *CPU) dex(_ operand) {
	mc.X.Add(0xff, false)
	mc.setNZ(mc.X)
}

func (mc *CPU) dey(_ operand) {
	mc.Y.Add(0xff, false)
	mc.setNZ(mc.Y)
}

// flags

func (mc *CPU) clc(_ operand) {
	mc.Status.Carry = false
}

func (mc *CPU) cld(_ operand) {
	mc.Status.DecimalMode = false
}

func (mc *CPU) cli(_ operand) {
	mc.Status.InterruptDisable = false
}

func (mc *CPU) clv(_ operand) {
	mc.Status.Overflow = false
}

func (mc *CPU) sec(_ operand) {
	mc.Status.Carry = true
}

func (mc *CPU) sed(_ operand) {
	mc.Status.DecimalMode = true
}

func (mc *CPU) sei(_ operand) {
	mc.Status.InterruptDisable = true
}

// branches

func (mc *CPU) branch(flag bool, op operand) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		mc.PC.Load(op.address)
	}
}

func (mc *CPU) bcc(op operand) {
	mc.branch(!mc.Status.Carry, op)
}

func (mc *CPU) bcs(op operand) {
	mc.branch(mc.Status.Carry, op)
}

func (mc *CPU) beq(op operand) {
	mc.branch(mc.Status.Zero, op)
}

func (mc *CPU) bmi(op operand) {
	mc.branch(mc.Status.Sign, op)
}

func (mc *CPU) bne(op operand) {
	mc.branch(!mc.Status.Zero, op)
}

func (mc *CPU) bpl(op operand) {
	mc.branch(!mc.Status.Sign, op)
}

func (mc *CPU) bvc(op operand) {
	mc.branch(!mc.Status.Overflow, op)
}

func (mc *CPU) bvs(op operand) {
	mc.branch(mc.Status.Overflow, op)
}

// jumps and subroutines

func (mc *CPU) jmp(op operand) {
	mc.PC.Load(op.address)
}

// JSR pushes the address of the last byte of the instruction, not the address
// of the next instruction. RTS adds one to the address it pulls.
//
// the high byte of the destination is read after the pushes. if the operand is
// in the stack page it may have been overwritten by the time it is read
func (mc *CPU) jsr(_ operand) {
	lo := mc.read8BitPC(loByte)
	rtn := mc.PC.Address()
	mc.push(uint8(rtn >> 8))
	mc.push(uint8(rtn))
	hi := mc.read8BitPC(hiByte)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

func (mc *CPU) rts(_ operand) {
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	mc.PC.Increment()
}

// stack

func (mc *CPU) pha(_ operand) {
	mc.push(mc.A.Value())
}

// PHP always pushes the status register with the break bit set
func (mc *CPU) php(_ operand) {
	mc.push(mc.Status.Pack(true))
}

func (mc *CPU) pla(_ operand) {
	mc.A.Load(mc.pull())
	mc.setNZ(mc.A)
}

func (mc *CPU) plp(_ operand) {
	mc.Status.Load(mc.pull())
}

// interrupts

// BRK is a one byte instruction but the PC is advanced past the byte following
// the opcode. the following byte is not read
func (mc *CPU) brk(_ operand) {
	mc.PC.Increment()
	mc.interrupt(cpubus.IRQ, true)
}

func (mc *CPU) rti(_ operand) {
	mc.Status.Load(mc.pull())
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}
