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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Header   bool
}

// Write the entries to io.Writer as a table.
func Write(output io.Writer, entries []Entry, attr WriteAttr) {
	t := table.NewWriter()
	t.SetOutputMirror(output)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = attr.Header

	if attr.Header {
		if attr.ByteCode {
			t.AppendHeader(table.Row{"Address", "Bytecode", "Operator", "Operand"})
		} else {
			t.AppendHeader(table.Row{"Address", "Operator", "Operand"})
		}
	}

	for _, e := range entries {
		if attr.ByteCode {
			t.AppendRow(table.Row{e.Address, e.Bytecode, e.Operator, e.Operand})
		} else {
			t.AppendRow(table.Row{e.Address, e.Operator, e.Operand})
		}
	}

	t.Render()
}
