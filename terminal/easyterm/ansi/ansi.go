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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

// Sentinal error patterns.
const (
	UnknownPen       = "ansi: unknown pen (%s)"
	UnknownPaper     = "ansi: unknown paper (%s)"
	UnknownAttribute = "ansi: unknown attribute (%s)"
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

var attributes = map[string]int{
	"BOLD":      attrBold,
	"UNDERLINE": attrUnderline,
	"INVERSE":   attrInverse,
	"STRIKE":    attrStrike,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// must is used during initialisation. the arguments to ColorBuild() in init()
// are all known to be valid
func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = must(ColorBuild("", "", "", false, false))

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c] = must(ColorBuild(c, "normal", "", true, false))
		DimPens[c] = must(ColorBuild(c, "normal", "", false, false))
	}

	PenStyles["bold"] = must(ColorBuild("", "", "bold", false, false))
	PenStyles["underline"] = must(ColorBuild("", "", "underline", false, false))
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	// pen
	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", curated.Errorf(UnknownPen, pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", t, c))
	}

	// paper
	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", curated.Errorf(UnknownPaper, paper)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		s.WriteString(fmt.Sprintf("%d%d", t, c))
	}

	// attribute
	if attribute != "" && !strings.EqualFold(attribute, "normal") {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", curated.Errorf(UnknownAttribute, attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", a))
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorBackwardOne is the CSI sequence to move the cursor backward (to the
// left for latin fonts) one character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
