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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the instruction as though it had been executed by the CPU. note that
	// the Final field is always true
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(result execution.Result) Entry {
	e := Entry{
		Result:   result,
		Address:  fmt.Sprintf("%#04x", result.Address),
		Operator: result.Mnemonic(),
		Operand:  result.Operand(),
	}

	if result.Defn.Undocumented {
		e.Operator = fmt.Sprintf("%s*", e.Operator)
	}

	b := result.Bytes()
	s := make([]string, len(b))
	for i := range b {
		s[i] = fmt.Sprintf("%02x", b[i])
	}
	e.Bytecode = strings.Join(s, " ")

	return e
}

// String returns the entry as a single line. For example:
//
//	0x0400  a9 01     LDA #$01
func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s  %-10s%s", e.Address, e.Bytecode, e.Result.String()))
}
