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

// Package disassembly creates a static disassembly of a region of memory.
//
// The disassembly is linear. Every instruction is assumed to follow the
// previous one so data areas will be disassembled as though they were code.
// Undocumented opcodes are shown with an asterisk after the mnemonic.
//
// Memory is accessed through the Read() function of the cpubus.Memory
// interface. Care should be taken if the memory includes devices that have
// side-effects when read. The RAM of a hardware.Machine is safe to use.
package disassembly
