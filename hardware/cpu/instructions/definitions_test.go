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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitionsTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var documented int

	for i, defn := range defs {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectInequality(t, defn.Operator, instructions.Nil, i)
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), i)
		if !defn.Undocumented {
			documented++
		}
	}

	// the NMOS 6502 has 151 documented opcodes
	test.ExpectEquality(t, documented, 151)
}

func TestDefinitionsSpotCheck(t *testing.T) {
	defn := instructions.Lookup(0x6c)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Effect, instructions.Flow)
	test.ExpectFailure(t, defn.IsBranch())

	defn = instructions.Lookup(0xd0)
	test.ExpectEquality(t, defn.Operator, instructions.Bne)
	test.ExpectSuccess(t, defn.IsBranch())

	defn = instructions.Lookup(0x0a)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Accumulator)
	test.ExpectEquality(t, defn.Bytes, 1)

	defn = instructions.Lookup(0xb6)
	test.ExpectEquality(t, defn.Operator, instructions.Ldx)
	test.ExpectEquality(t, defn.AddressingMode, instructions.ZeroPageIndexedY)

	defn = instructions.Lookup(0xeb)
	test.ExpectEquality(t, defn.Operator, instructions.SBC)
	test.ExpectSuccess(t, defn.Undocumented)
	test.ExpectEquality(t, defn.Operator.String(), "SBC")

	defn = instructions.Lookup(0x02)
	test.ExpectEquality(t, defn.Operator, instructions.KIL)
	test.ExpectEquality(t, defn.Bytes, 1)

	defn = instructions.Lookup(0x91)
	test.ExpectEquality(t, defn.Operator, instructions.Sta)
	test.ExpectEquality(t, defn.Effect, instructions.Write)
}

func TestOperatorNames(t *testing.T) {
	test.ExpectEquality(t, instructions.Adc.String(), "ADC")
	test.ExpectEquality(t, instructions.Tya.String(), "TYA")
	test.ExpectEquality(t, instructions.LAX.String(), "LAX")
	test.ExpectEquality(t, instructions.Nil.String(), "???")
}
