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

// Package feedback implements an interrupt feedback port. The port is a
// single memory-mapped byte. Writing to it sets the level of the IRQ and NMI
// lines of the machine. This is how a test program running on the CPU can
// raise interrupts against itself.
//
// The arrangement is the one expected by the interrupt test in Klaus
// Dormann's 6502 test suite.
package feedback

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Port sits in front of another cpubus.Memory implementation. All accesses
// are passed through and accesses at the port's address are tracked.
type Port struct {
	mem cpubus.Memory

	address uint16
	irqMask uint8
	nmiMask uint8

	// lines are asserted when the bit is low rather than high
	activeLow bool

	value uint8

	// the level of the NMI line when it was last sampled by Lines()
	nmiPrev bool
}

// Feedback bits are numbered 0 to 7. Use NoLine for a line that is not
// connected.
const NoLine = -1

// NewPort is the preferred method of initialisation for the Port type. If
// activeLow is true a line is asserted when its bit is clear.
func NewPort(mem cpubus.Memory, address uint16, irqBit int, nmiBit int, activeLow bool) *Port {
	p := &Port{
		mem:       mem,
		address:   address,
		activeLow: activeLow,
	}
	if irqBit >= 0 && irqBit <= 7 {
		p.irqMask = 0x01 << irqBit
	}
	if nmiBit >= 0 && nmiBit <= 7 {
		p.nmiMask = 0x01 << nmiBit
	}
	if activeLow {
		p.value = 0xff
		p.mem.Write(address, p.value)
	}
	return p
}

func (p *Port) String() string {
	irq, nmi := p.levels()
	return fmt.Sprintf("feedback %#04x=%#02x irq=%v nmi=%v", p.address, p.value, irq, nmi)
}

// Address returns the location of the port in the address space.
func (p *Port) Address() uint16 {
	return p.address
}

// Read is an implementation of cpubus.Memory.
func (p *Port) Read(address uint16) uint8 {
	return p.mem.Read(address)
}

// Write is an implementation of cpubus.Memory.
func (p *Port) Write(address uint16, data uint8) {
	p.mem.Write(address, data)
	if address == p.address {
		p.value = data
	}
}

func (p *Port) levels() (bool, bool) {
	v := p.value
	if p.activeLow {
		v = ^v
	}
	return v&p.irqMask != 0, v&p.nmiMask != 0
}

// Lines samples the interrupt lines. The IRQ line is level sensitive and is
// returned as it is. The NMI line is edge sensitive and nmi is true only if
// the line has been asserted since the previous call to Lines().
func (p *Port) Lines() (irq bool, nmi bool) {
	irq, level := p.levels()
	nmi = level && !p.nmiPrev
	p.nmiPrev = level
	return irq, nmi
}
