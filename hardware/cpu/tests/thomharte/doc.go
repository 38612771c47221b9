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

// Package thomharte runs the 6502 single-step tests created and maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Add the
// instruction files you want to test from the 6502/v1 directory on Github to
// the 6502/v1 directory in this package. If the directory is empty the test is
// skipped.
//
// Only the final state of each test is checked. The emulation is not cycle
// accurate so the bus activity recorded in the test data is ignored, as are
// the files for undocumented opcodes.
package thomharte
