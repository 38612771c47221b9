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

// Package hardware builds a complete machine around the CPU. A Machine is
// described by a profile.Profile and consists of the CPU, 64KiB of RAM and
// the optional memory-mapped devices: the interrupt feedback port and the
// character console.
//
// The devices are chained in front of the RAM. Each device handles accesses
// to its own addresses and passes every other access down the chain.
//
// Step() executes one instruction and then samples the interrupt lines of
// the feedback port, if present. Run() calls Step() until the program traps,
// the instruction limit is reached or the continue check function says so.
//
// A program is said to have trapped when an instruction leaves the PC where
// it was before the instruction. In other words, a JMP to itself or a branch
// to itself. This is how the conformance test programs report success or
// failure.
package hardware
