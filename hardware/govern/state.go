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

// Package govern defines the states a running machine can be in. The state
// is returned by the continue check function given to hardware.Machine.Run()
// and is how the caller controls a running machine.
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Paused causes the run loop to stop executing instructions but to continue
// calling the continue check function. Ending causes the run loop to return.
const (
	Running State = iota
	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}

	return ""
}
