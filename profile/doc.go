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

// Package profile describes a machine to be built by the hardware package.
// Profiles are stored as YAML files. For example:
//
//	image: 6502_functional_test.bin
//	load: 0x0000
//	entry: 0x0400
//	trap: 0x3469
//	limit: 100000000
//
// Address fields accept decimal integers, 0x prefixed hexadecimal and $
// prefixed hexadecimal. The entry field also accepts the word "reset", in
// which case the program starts at the address in the reset vector.
//
// A profile can also describe memory-mapped devices:
//
//	feedback:
//	  address: 0xbffc
//	  irq: 0
//	  nmi: 1
//	console:
//	  out: 0xf001
//	  in: 0xf004
//
// The image path in a profile loaded from a file is relative to the directory
// containing the profile.
package profile
