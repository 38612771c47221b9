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

// Package console implements a memory-mapped character terminal. A write to
// the output register sends the character to an io.Writer. A read of the
// input register returns the next key queued with Feed(), or zero if no key
// is waiting. Reading never blocks the CPU.
package console

import (
	"io"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Default register addresses. These are the addresses used by the EhBASIC
// port for the simple 6502 "SBC" style machines.
const (
	DefaultOut = uint16(0xf001)
	DefaultIn  = uint16(0xf004)
)

// the number of keys that can be waiting to be read by the CPU
const inputQueueLen = 256

// Backspace character. Writing it to the output register erases the previous
// character on the terminal.
const Backspace = 0x08

// Console sits in front of another cpubus.Memory implementation.
type Console struct {
	mem cpubus.Memory

	out uint16
	in  uint16

	output io.Writer
	input  chan byte
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(mem cpubus.Memory, out uint16, in uint16, output io.Writer) *Console {
	return &Console{
		mem:    mem,
		out:    out,
		in:     in,
		output: output,
		input:  make(chan byte, inputQueueLen),
	}
}

// SetOutput sets the writer for characters written to the output register. A
// nil writer discards output.
func (con *Console) SetOutput(output io.Writer) {
	con.output = output
}

// Feed queues a key for the CPU to read. It is safe to call Feed() from a
// goroutine other than the one running the CPU. Feed() will block if the
// queue is full.
func (con *Console) Feed(b byte) {
	con.input <- b
}

// Read is an implementation of cpubus.Memory.
func (con *Console) Read(address uint16) uint8 {
	if address == con.in {
		select {
		case b := <-con.input:
			return b
		default:
			return 0
		}
	}
	return con.mem.Read(address)
}

// Write is an implementation of cpubus.Memory.
func (con *Console) Write(address uint16, data uint8) {
	if address == con.out && con.output != nil {
		var err error
		if data == Backspace {
			_, err = con.output.Write([]byte{Backspace, ' ', Backspace})
		} else {
			_, err = con.output.Write([]byte{data})
		}
		if err != nil {
			logger.Log(logger.Allow, "console", err)
		}
	}
	con.mem.Write(address, data)
}
