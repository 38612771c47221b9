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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Interrupt indicates the type of interrupt sequence recorded by a Result.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Reset:
		return "RESET"
	}
	return ""
}

// Result records the state/result of the most recent CPU instruction or
// interrupt sequence.
type Result struct {
	// the address at which the instruction began. for interrupt sequences
	// this is the value of the PC before the sequence began
	Address uint16

	// the definition of the instruction. the zero value for interrupt
	// sequences and for a result that has been reset
	Defn instructions.Definition

	// the number of bytes read from the instruction stream, including the
	// opcode
	ByteCount int

	// the operand of the instruction. only the lower byte is meaningful for
	// two byte instructions
	InstructionData uint16

	// whether a branch instruction took the branch
	BranchSuccess bool

	// the interrupt sequence performed. NoInterrupt for normal instructions
	// including BRK
	Interrupt Interrupt

	// whether the instruction or sequence completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Mnemonic returns the mnemonic of the instruction, or the name of the
// interrupt sequence.
func (r Result) Mnemonic() string {
	if r.Interrupt != NoInterrupt {
		return r.Interrupt.String()
	}
	return r.Defn.Operator.String()
}

// Operand returns the operand of the instruction formatted according to the
// addressing mode.
func (r Result) Operand() string {
	if r.Interrupt != NoInterrupt {
		return ""
	}

	// operand is incomplete
	if r.ByteCount < r.Defn.Bytes {
		return ""
	}

	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d)
	case instructions.Relative:
		// relative addresses are shown as the branch destination
		return fmt.Sprintf("$%04x", r.Address+2+uint16(int8(d)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", d)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d)
	}

	return ""
}

// Bytes returns the bytes of the instruction as they appear in memory.
func (r Result) Bytes() []uint8 {
	if r.Interrupt != NoInterrupt || r.ByteCount == 0 {
		return nil
	}
	b := []uint8{r.Defn.OpCode}
	if r.ByteCount > 1 {
		b = append(b, uint8(r.InstructionData))
	}
	if r.ByteCount > 2 {
		b = append(b, uint8(r.InstructionData>>8))
	}
	return b
}

func (r Result) String() string {
	if !r.Final && r.ByteCount == 0 {
		return "no instruction"
	}

	m := r.Mnemonic()
	if r.Defn.Undocumented {
		m = fmt.Sprintf("%s*", m)
	}

	o := r.Operand()
	if o == "" {
		return m
	}
	return fmt.Sprintf("%s %s", m, o)
}
