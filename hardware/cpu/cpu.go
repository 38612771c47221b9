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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// CPU implements the NMOS 6502. Register logic is implemented by the Register
// type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// last result. updated by Step(), IRQ(), NMI() and Reset()
	LastResult execution.Result

	// NoDecimal causes ADC and SBC to ignore the decimal flag. the flag itself
	// is still set and cleared by SED and CLD. this is how the 6502 variant
	// found in the NES behaves
	NoDecimal bool

	// IndirectJMPBug reproduces the page wrapping behaviour of JMP (indirect)
	// when the pointer is on the last byte of a page. for example, JMP ($10ff)
	// takes the high byte of the address from $1000 rather than $1100
	IndirectJMPBug bool

	// permission used for log entries made by the CPU. the default is
	// logger.Allow
	LogPermission logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU structure.
//
// All registers are zero and the interrupt disable flag is set. The stack
// pointer is zero, so a power-on Reset() will leave it at 0xfd.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),

		LogPermission: logger.Allow,
	}
	mc.Status.InterruptDisable = true
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The memory
// implementation is shared with the copy.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset performs the reset sequence of the 6502. The interrupt disable flag
// is set and the PC is loaded from the reset vector.
//
// The stack pointer is decremented by three but nothing is written to the
// stack. On real hardware the reset sequence is an interrupt sequence with
// the writes suppressed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = execution.Reset

	mc.SP.Load(mc.SP.Value() - 3)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(cpubus.Reset))

	mc.LastResult.Final = true
}

// IRQ performs the interrupt sequence for a maskable interrupt. Returns false
// if the interrupt disable flag is set, in which case the CPU is unchanged.
func (mc *CPU) IRQ() bool {
	if mc.Status.InterruptDisable {
		return false
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = execution.IRQ

	mc.interrupt(cpubus.IRQ, false)

	mc.LastResult.Final = true
	return true
}

// NMI performs the interrupt sequence for a non-maskable interrupt. The
// interrupt disable flag has no effect.
func (mc *CPU) NMI() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = execution.NMI

	mc.interrupt(cpubus.NMI, false)

	mc.LastResult.Final = true
}

// interrupt pushes the PC and the status register to the stack and loads the
// PC from the vector. the break bit in the pushed status is set only for BRK
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Pack(brk))
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))
}

// PredictRTS returns the address an RTS instruction would return to if it
// were executed now. The stack is read through the memory bus but the stack
// pointer is not changed.
func (mc *CPU) PredictRTS() uint16 {
	sp := mc.SP.Value()
	lo := mc.mem.Read(cpubus.Stack | uint16(sp+1))
	hi := mc.mem.Read(cpubus.Stack | uint16(sp+2))
	return ((uint16(hi) << 8) | uint16(lo)) + 1
}

// Step executes exactly one instruction. The basic process when executing an
// instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Undocumented instructions read their operand bytes but nothing else.
func (mc *CPU) Step() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	oc := &opcodes[mc.read8BitPC(newOpcode)]
	mc.LastResult.Defn = oc.defn

	var op operand
	switch {
	case oc.defn.Undocumented:
		mc.skipOperand(oc.defn.Bytes)
	case oc.defn.Operator == instructions.Jsr:
		// JSR reads its own operand. the stack pushes happen between the
		// reads of the low and high bytes
		op.mode = oc.defn.AddressingMode
	default:
		op = mc.resolve(oc.defn.AddressingMode)
	}

	oc.fn(mc, op)

	mc.LastResult.Final = true
}

// read8Bit returns 8bit value from the specified address
func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

// read16Bit returns 16bit value from the specified address. the address of
// the high byte wraps around at 0xffff
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage returns the 16bit value from the zero page address. the
// address of the high byte wraps around within the zero page
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// write8Bit writes 8 bits to the specified address
func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// read 8bits from the PC location has additional side-effects depending on
// context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loByte
	hiByte
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData for operand bytes
func (mc *CPU) read8BitPC(effect read8BitPCeffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Increment()

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
	case hiByte:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
func (mc *CPU) read16BitPC() uint16 {
	mc.read8BitPC(loByte)
	mc.read8BitPC(hiByte)
	return mc.LastResult.InstructionData
}

// skipOperand reads the operand bytes of an instruction of n bytes and
// discards them
func (mc *CPU) skipOperand(n int) {
	switch n {
	case 2:
		mc.read8BitPC(loByte)
	case 3:
		mc.read16BitPC()
	}
}

// push value onto the stack. the stack pointer wraps around within the stack
// page
func (mc *CPU) push(v uint8) {
	mc.write8Bit(cpubus.Stack|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

// pull value from the stack
func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(cpubus.Stack | mc.SP.Address())
}
