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

package hardware

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/console"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/feedback"
	"github.com/jetsetilly/gopher6502/hardware/memory/ram"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/profile"
)

// Sentinal error patterns.
const (
	ImageError = "machine: %v"
)

// the number of log entries the CPU can make between resets. a program
// running through uninitialised memory can execute a great many KIL opcodes
const cpuLogLimit = 16

// Machine is the main container for the emulated components.
type Machine struct {
	CPU *cpu.CPU
	RAM *ram.RAM

	// the top of the memory chain. the CPU is plumbed into this
	Mem cpubus.Memory

	// optional devices. will be nil if the profile does not include them
	Feedback *feedback.Port
	Console  *console.Console

	prof profile.Profile

	// the number of instructions executed since the last Reset()
	Instructions int

	trace io.Writer

	// permission given to the CPU for logging. reset by Reset()
	cpuLog *logger.Limit
}

// NewMachine creates a new Machine from the profile. If the profile names an
// image then it is loaded into memory. The machine is reset and ready to run.
func NewMachine(prof profile.Profile) (*Machine, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		RAM:  ram.NewRAM(),
		prof: prof,
	}

	m.Mem = m.RAM

	if prof.Feedback != nil {
		m.Feedback = feedback.NewPort(m.Mem, uint16(prof.Feedback.Address),
			prof.Feedback.IRQ, prof.Feedback.NMI, prof.Feedback.ActiveLow)
		m.Mem = m.Feedback
	}

	if prof.Console != nil {
		m.Console = console.NewConsole(m.Mem, uint16(prof.Console.Out), uint16(prof.Console.In), nil)
		m.Mem = m.Console
	}

	m.CPU = cpu.NewCPU(m.Mem)
	m.CPU.NoDecimal = prof.NoDecimal
	m.CPU.IndirectJMPBug = prof.JMPBug

	m.cpuLog = logger.NewLimit(cpuLogLimit)
	m.CPU.LogPermission = m.cpuLog

	if prof.Image != "" {
		data, err := os.ReadFile(prof.Image)
		if err != nil {
			return nil, curated.Errorf(ImageError, err)
		}
		if err := m.LoadImage(data); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "machine", "loaded %s (%d bytes) at %s", prof.Image, len(data), prof.Load)
	} else {
		m.Reset()
	}

	return m, nil
}

// LoadImage copies data into RAM at the load address of the profile and
// resets the machine.
func (m *Machine) LoadImage(data []byte) error {
	if err := m.RAM.Load(uint16(m.prof.Load), data); err != nil {
		return curated.Errorf(ImageError, err)
	}
	m.Reset()
	return nil
}

// Reset the CPU and set the PC to the entry address of the profile. If the
// entry is the reset vector then the PC is left as the CPU reset sequence
// left it.
func (m *Machine) Reset() {
	m.CPU.Reset()
	if !m.prof.Entry.Reset {
		m.CPU.PC.Load(uint16(m.prof.Entry.Address))
	}
	m.Instructions = 0
	m.cpuLog.Reset()
}

// Profile returns the profile used to create the machine.
func (m *Machine) Profile() profile.Profile {
	return m.prof
}

// SetTrace sets the writer that will receive a line for every instruction
// executed and every interrupt taken. A nil writer turns tracing off.
func (m *Machine) SetTrace(w io.Writer) {
	m.trace = w
}

// SetConsoleOutput sets the writer for console output. Has no effect if the
// machine has no console.
func (m *Machine) SetConsoleOutput(w io.Writer) {
	if m.Console != nil {
		m.Console.SetOutput(w)
	}
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// writeTrace outputs the most recent execution result and the state of the
// CPU to the trace writer
func (m *Machine) writeTrace() {
	if m.trace == nil {
		return
	}
	_, err := fmt.Fprintf(m.trace, "%-32s %s\n", m.CPU.LastResult.String(), m.CPU.String())
	if err != nil {
		logger.Log(logger.Allow, "machine", err)
		m.trace = nil
	}
}
