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

// Step executes the next instruction. After the instruction has completed the
// interrupt lines of the feedback port are sampled. An NMI is taken on the
// rising edge of the NMI line. An IRQ is taken while the IRQ line is asserted
// and the interrupt disable flag is clear.
//
// Returns true if an interrupt sequence was performed after the instruction.
func (m *Machine) Step() bool {
	m.CPU.Step()
	m.Instructions++
	m.writeTrace()

	if m.Feedback == nil {
		return false
	}

	irq, nmi := m.Feedback.Lines()
	if nmi {
		m.CPU.NMI()
		m.writeTrace()
		return true
	}

	if irq && m.CPU.IRQ() {
		m.writeTrace()
		return true
	}

	return false
}
