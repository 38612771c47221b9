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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which is used in the same way as fmt.Errorf().
//
// The pattern string given to Errorf() identifies the error. Packages export
// their patterns as constants so that callers can check for them:
//
//	const LoadOverflow = "ram: image does not fit (%d bytes at %#04x)"
//
//	err := curated.Errorf(LoadOverflow, len(data), origin)
//
//	if curated.Is(err, LoadOverflow) {
//		...
//	}
//
// Has() is similar to Is() but looks for the pattern anywhere in a chain of
// curated errors, where the chain is built by passing one curated error as a
// value to another:
//
//	f := curated.Errorf("machine: %v", err)
//	curated.Has(f, LoadOverflow) // true
//	curated.Is(f, LoadOverflow)  // false
//
// The Error() function normalises the message by removing adjacent duplicate
// parts, so wrapping "ram: foo" in "ram: %v" does not produce "ram: ram: foo".
package curated
