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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// handler performs the effect of an instruction on a resolved operand.
type handler func(mc *CPU, op operand)

type opcode struct {
	defn instructions.Definition
	fn   handler
}

// the dispatch table. indexed by opcode value
var opcodes [256]opcode

// handlers for the documented operators
var handlers = map[instructions.Operator]handler{
	instructions.Adc: (*CPU).adc,
	instructions.And: (*CPU).and,
	instructions.Asl: (*CPU).asl,
	instructions.Bcc: (*CPU).bcc,
	instructions.Bcs: (*CPU).bcs,
	instructions.Beq: (*CPU).beq,
	instructions.Bit: (*CPU).bit,
	instructions.Bmi: (*CPU).bmi,
	instructions.Bne: (*CPU).bne,
	instructions.Bpl: (*CPU).bpl,
	instructions.Brk: (*CPU).brk,
	instructions.Bvc: (*CPU).bvc,
	instructions.Bvs: (*CPU).bvs,
	instructions.Clc: (*CPU).clc,
	instructions.Cld: (*CPU).cld,
	instructions.Cli: (*CPU).cli,
	instructions.Clv: (*CPU).clv,
	instructions.Cmp: (*CPU).cmp,
	instructions.Cpx: (*CPU).cpx,
	instructions.Cpy: (*CPU).cpy,
	instructions.Dec: (*CPU).dec,
	instructions.Dex: (*CPU).dex,
	instructions.Dey: (*CPU).dey,
	instructions.Eor: (*CPU).eor,
	instructions.Inc: (*CPU).inc,
	instructions.Inx: (*CPU).inx,
	instructions.Iny: (*CPU).iny,
	instructions.Jmp: (*CPU).jmp,
	instructions.Jsr: (*CPU).jsr,
	instructions.Lda: (*CPU).lda,
	instructions.Ldx: (*CPU).ldx,
	instructions.Ldy: (*CPU).ldy,
	instructions.Lsr: (*CPU).lsr,
	instructions.Nop: (*CPU).nop,
	instructions.Ora: (*CPU).ora,
	instructions.Pha: (*CPU).pha,
	instructions.Php: (*CPU).php,
	instructions.Pla: (*CPU).pla,
	instructions.Plp: (*CPU).plp,
	instructions.Rol: (*CPU).rol,
	instructions.Ror: (*CPU).ror,
	instructions.Rti: (*CPU).rti,
	instructions.Rts: (*CPU).rts,
	instructions.Sbc: (*CPU).sbc,
	instructions.Sec: (*CPU).sec,
	instructions.Sed: (*CPU).sed,
	instructions.Sei: (*CPU).sei,
	instructions.Sta: (*CPU).sta,
	instructions.Stx: (*CPU).stx,
	instructions.Sty: (*CPU).sty,
	instructions.Tax: (*CPU).tax,
	instructions.Tay: (*CPU).tay,
	instructions.Tsx: (*CPU).tsx,
	instructions.Txa: (*CPU).txa,
	instructions.Txs: (*CPU).txs,
	instructions.Tya: (*CPU).tya,
}

func init() {
	for _, defn := range instructions.GetDefinitions() {
		var fn handler

		switch {
		case defn.Operator == instructions.KIL:
			fn = (*CPU).kil
		case defn.Undocumented:
			fn = (*CPU).nop
		default:
			var ok bool
			fn, ok = handlers[defn.Operator]
			if !ok {
				panic(fmt.Sprintf("cpu: no handler for %s (%#02x)", defn.Operator, defn.OpCode))
			}
		}

		opcodes[defn.OpCode] = opcode{defn: defn, fn: fn}
	}
}
