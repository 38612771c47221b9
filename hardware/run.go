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

	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/logger"
)

// The continueCheck() function is called after every instruction and it can
// be expensive to do a full check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Outcome describes why Run() returned.
type Outcome struct {
	// the program jumped or branched to itself, or reached the trap address
	// of the profile
	Trapped bool

	// the program trapped at the trap address of the profile. if the profile
	// has no trap address then any trap is a success
	Success bool

	// the instruction limit of the profile was reached
	LimitReached bool

	// the PC when the run ended
	PC uint16

	// the number of instructions executed since the machine was reset
	Instructions int
}

func (o Outcome) String() string {
	switch {
	case o.Success:
		return fmt.Sprintf("success at %#04x after %d instructions", o.PC, o.Instructions)
	case o.Trapped:
		return fmt.Sprintf("trapped at %#04x after %d instructions", o.PC, o.Instructions)
	case o.LimitReached:
		return fmt.Sprintf("instruction limit reached at %#04x (%d instructions)", o.PC, o.Instructions)
	}
	return fmt.Sprintf("stopped at %#04x after %d instructions", o.PC, o.Instructions)
}

// Run executes instructions as quickly as possible until the program traps,
// the instruction limit of the profile is reached or continueCheck returns
// govern.Ending. The continueCheck function can be nil.
//
// While continueCheck returns govern.Paused no instructions are executed but
// continueCheck is called again immediately. A continueCheck that pauses the
// machine should block until it is ready to return a different state.
func (m *Machine) Run(continueCheck func() (govern.State, error)) (Outcome, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var outcome Outcome
	var err error

	state := govern.Running

	for state != govern.Ending {
		if state == govern.Running {
			prev := m.CPU.PC.Address()
			interrupted := m.Step()
			pc := m.CPU.PC.Address()

			atTrap := m.prof.Trap != nil && pc == uint16(*m.prof.Trap)

			// an interrupt can leave the PC unchanged by coincidence. for
			// example, an interrupt handler that returns immediately
			selfJump := !interrupted && pc == prev

			if atTrap || selfJump {
				outcome.Trapped = true
				outcome.Success = atTrap || m.prof.Trap == nil
				break
			}

			if m.prof.Limit > 0 && m.Instructions >= m.prof.Limit {
				outcome.LimitReached = true
				break
			}
		}

		state, err = continueCheck()
		if err != nil {
			return outcome, err
		}
	}

	outcome.PC = m.CPU.PC.Address()
	outcome.Instructions = m.Instructions
	logger.Logf(logger.Allow, "machine", "%s", outcome)

	return outcome, nil
}
