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

package registers

import (
	"strings"
)

// the bits of the status byte, as pushed to the stack
const (
	carryBit     = 0x01
	zeroBit      = 0x02
	interruptBit = 0x04
	decimalBit   = 0x08
	breakBit     = 0x10
	reservedBit  = 0x20
	overflowBit  = 0x40
	signBit      = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
//
// There is no break flag. The break bit exists only in the byte pushed to the
// stack by BRK and PHP. Similarly, the reserved bit is always set when pushed
// and is ignored when pulled.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, on rune, off rune) {
		if f {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The break bit is not set. Use Pack() when the break bit is
// required.
func (sr StatusRegister) Value() uint8 {
	return sr.Pack(false)
}

// Pack converts the StatusRegister into an 8 bit value, with the break bit
// set or unset as specified. The reserved bit is always set.
func (sr StatusRegister) Pack(brk bool) uint8 {
	v := uint8(reservedBit)

	if sr.Sign {
		v |= signBit
	}
	if sr.Overflow {
		v |= overflowBit
	}
	if brk {
		v |= breakBit
	}
	if sr.DecimalMode {
		v |= decimalBit
	}
	if sr.InterruptDisable {
		v |= interruptBit
	}
	if sr.Zero {
		v |= zeroBit
	}
	if sr.Carry {
		v |= carryBit
	}

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver. The break and reserved bits are
// ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&signBit == signBit
	sr.Overflow = v&overflowBit == overflowBit
	sr.DecimalMode = v&decimalBit == decimalBit
	sr.InterruptDisable = v&interruptBit == interruptBit
	sr.Zero = v&zeroBit == zeroBit
	sr.Carry = v&carryBit == carryBit
}
