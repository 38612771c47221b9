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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer strings.Builder
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// Help writes the buffered usage message from the flag package to output,
// followed by the list of sub-modes and any additional help.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	s := hw.buffer.String()
	helpLines := strings.Split(s, "\n")

	var b strings.Builder

	// output "no help available" message if there is no flag information and
	// no sub-modes
	if s == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		b.WriteString("No help available")
		if banner != "" {
			b.WriteString(fmt.Sprintf(" for %s", banner))
		}
		b.WriteString("\n")
		_, _ = io.WriteString(output, b.String())
		return
	}

	if banner != "" {
		b.WriteString(fmt.Sprintf("%s for %s mode\n", helpLines[0], banner))
	} else {
		b.WriteString(helpLines[0])
		b.WriteString("\n")
	}

	// flag information produced by flag package
	if len(helpLines) > 1 {
		b.WriteString(strings.Join(helpLines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// separate from flag information
		if len(helpLines) > 2 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		b.WriteString(fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		b.WriteString("\n")
		b.WriteString(additionalHelp)
		b.WriteString("\n")
	}

	_, _ = io.WriteString(output, b.String())
}
