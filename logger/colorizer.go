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

package logger

import (
	"io"

	"github.com/jetsetilly/gopher6502/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is written in a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	var i int
	for i = 0; i < len(s)-1; i++ {
		if s[i] == ':' && s[i+1] == ' ' {
			break
		}
	}

	// not a log entry. pass through unchanged
	if i >= len(s)-1 {
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, ansi.DimPens["cyan"])
	if err != nil {
		return 0, err
	}
	_, err = io.WriteString(c.out, s[:i])
	if err != nil {
		return 0, err
	}
	_, err = io.WriteString(c.out, ansi.NormalPen)
	if err != nil {
		return 0, err
	}
	_, err = io.WriteString(c.out, s[i:])
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
