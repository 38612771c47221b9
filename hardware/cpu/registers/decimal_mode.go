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

package registers

// the decimal mode algorithms are from Bruce Clark's "Decimal Mode" tutorial,
// appendix A. the results for the NMOS 6502 are used, including the results
// for invalid BCD values

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// The zero flag is as it would be for a binary addition. The sign and
// overflow flags are computed after the low nibble has been adjusted but
// before the high nibble adjustment.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	a := int(r.value)
	b := int(val)

	var c int
	if carry {
		c = 1
	}

	zero = uint8(a+b+c) == 0

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := (a & 0xf0) + (b & 0xf0) + lo
	sign = sum&0x80 == 0x80

	// the signed interpretation of the same sum is used for the overflow flag
	signed := int(int8(uint8(a&0xf0))) + int(int8(uint8(b&0xf0))) + lo
	overflow = signed < -128 || signed > 127

	if sum >= 0xa0 {
		sum += 0x60
	}
	rcarry = sum >= 0x100

	r.value = uint8(sum)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// On the NMOS 6502 all flags are as they would be for a binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	a := int(r.value)
	b := int(val)

	// the carry flag is the inverse of a borrow
	var borrow int
	if !carry {
		borrow = 1
	}

	lo := (a & 0x0f) - (b & 0x0f) - borrow
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	res := (a & 0xf0) - (b & 0xf0) + lo
	if res < 0 {
		res -= 0x60
	}

	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}
