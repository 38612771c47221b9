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

// Package klaus2m5 runs the 6502 functional tests created and maintained by
// Klaus Dormann.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binaries are not included in the repository. Each test is
// described by a machine profile in the testdata directory and the binary
// named by the profile should be placed alongside it. A test is skipped if
// its binary is missing.
//
// The tests were assembled with the as65 assembler which is available for
// download at the above URL. In all cases the assembler was executed in the
// following manner:
//
//	as65 -l -m -w -h0 <test file>.a65
//
// The profiles expect binaries that fill the entire 64KiB address space and
// so are loaded at address zero.
//
// # 6502_functional_test
//
// The 6502_functional_test.a65 file unchanged. Success is reaching the trap
// at 0x3469.
//
// # 6502_decimal_test
//
// The 6502_decimal_test.a65 file changed so that the sign, overflow and zero
// flags are tested for the NMOS part.
//
//	line 31: chk_n = 1
//	line 32: chk_v = 1
//	line 33: chk_z = 1
//
// Success is reaching the end of the test with zero in the ERROR byte.
//
// # 6502_interrupt_test
//
// The 6502_interrupt_test.a65 file with the feedback port at 0xbffc and
// totem pole outputs, IRQ on bit 0 and NMI on bit 1.
//
//	I_port  = $bffc
//	I_drive = 0
//
// Success is reaching the trap at 0x06f5.
package klaus2m5
