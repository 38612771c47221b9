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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "term", "disasm")
//	_, _ = md.Parse()
//
// After the first Parse() the Mode() function says which sub-mode was
// selected. If the first argument is not one of the sub-modes then the first
// sub-mode in the list is selected. Sub-mode comparisons are case
// insensitive and Mode() always returns an upper case string.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "maximum number of instructions")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		run(md.RemainingArgs(), *limit)
//	}
//
// Modes can be chained as deeply as required. Each call to NewMode() starts a
// new set of flags and sub-modes for the next call to Parse().
package modalflag
