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


package test

import (
	"fmt"
	"strings"
)

// CompareWriter is an io.Writer that keeps everything written to it so that
// it can be compared with expected output.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the buffer is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

// Contains returns true if s appears anywhere in the buffer.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.buffer.String(), s)
}

// Lines returns the buffer as a list of lines. Trailing whitespace on each
// line is removed, as is a final empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	l := strings.Split(s, "\n")
	for i := range l {
		l[i] = strings.TrimRight(l[i], " \t")
	}
	return l
}

// Diff compares the buffer with the expected lines and describes the first
// difference. Returns the empty string if there is no difference.
func (tw *CompareWriter) Diff(expected ...string) string {
	l := tw.Lines()
	for i := range expected {
		if i >= len(l) {
			return fmt.Sprintf("line %d: missing, wanted %q", i+1, expected[i])
		}
		if l[i] != expected[i] {
			return fmt.Sprintf("line %d: got %q, wanted %q", i+1, l[i], expected[i])
		}
	}
	if len(l) > len(expected) {
		return fmt.Sprintf("line %d: unexpected %q", len(expected)+1, l[len(expected)])
	}
	return ""
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
