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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func result(address uint16, opcode uint8, data uint16) execution.Result {
	defn := instructions.Lookup(opcode)
	return execution.Result{
		Address:         address,
		Defn:            defn,
		ByteCount:       defn.Bytes,
		InstructionData: data,
		Final:           true,
	}
}

func TestResultString(t *testing.T) {
	test.ExpectEquality(t, result(0x0400, 0xa9, 0x01).String(), "LDA #$01")
	test.ExpectEquality(t, result(0x0400, 0x0a, 0).String(), "ASL A")
	test.ExpectEquality(t, result(0x0400, 0xea, 0).String(), "NOP")
	test.ExpectEquality(t, result(0x0400, 0x8d, 0x1234).String(), "STA $1234")
	test.ExpectEquality(t, result(0x0400, 0xb6, 0x12).String(), "LDX $12,Y")
	test.ExpectEquality(t, result(0x0400, 0x6c, 0x10ff).String(), "JMP ($10ff)")
	test.ExpectEquality(t, result(0x0400, 0x81, 0x20).String(), "STA ($20,X)")
	test.ExpectEquality(t, result(0x0400, 0xb1, 0x20).String(), "LDA ($20),Y")

	// branch operands are shown as the destination address
	test.ExpectEquality(t, result(0x0400, 0xd0, 0xfe).String(), "BNE $0400")
	test.ExpectEquality(t, result(0x0400, 0xf0, 0x10).String(), "BEQ $0412")

	// undocumented instructions are marked
	test.ExpectEquality(t, result(0x0400, 0xa7, 0x10).String(), "LAX* $10")

	test.ExpectEquality(t, execution.Result{}.String(), "no instruction")

	r := execution.Result{Address: 0x0400, Interrupt: execution.NMI, Final: true}
	test.ExpectEquality(t, r.String(), "NMI")
}

func TestResultBytes(t *testing.T) {
	b := result(0x0400, 0x8d, 0x1234).Bytes()
	test.DemandEquality(t, len(b), 3)
	test.ExpectEquality(t, b[0], 0x8d)
	test.ExpectEquality(t, b[1], 0x34)
	test.ExpectEquality(t, b[2], 0x12)
}

func TestIsValid(t *testing.T) {
	r := result(0x0400, 0xa9, 0x01)
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 1
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.WrongByteRead))

	r.Final = false
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.NotFinal))

	r = execution.Result{Interrupt: execution.IRQ, Final: true}
	test.ExpectSuccess(t, r.IsValid())
}
