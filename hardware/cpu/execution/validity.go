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
	"github.com/jetsetilly/gopher6502/curated"
)

// Patterns for the errors returned by IsValid().
const (
	NotFinal      = "cpu: execution not finalised"
	WrongByteRead = "cpu: unexpected number of bytes read during decode of %s (%d instead of %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinal)
	}

	// interrupt sequences do not read from the instruction stream
	if r.Interrupt != NoInterrupt {
		if r.ByteCount != 0 {
			return curated.Errorf(WrongByteRead, r.Interrupt, r.ByteCount, 0)
		}
		return nil
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongByteRead, r.Defn.Operator, r.ByteCount, r.Defn.Bytes)
	}

	return nil
}
