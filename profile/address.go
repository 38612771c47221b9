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

package profile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/gopher6502/curated"
)

// Sentinal error patterns for address parsing.
const (
	InvalidAddress = "profile: invalid address (%s)"
	InvalidEntry   = "profile: invalid entry (%s)"
)

// ParseAddress parses an address string. The string can be a decimal number,
// a hexadecimal number prefixed with 0x, or a hexadecimal number prefixed with
// $. The value must fit in 16 bits.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 16)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 16)
	default:
		v, err = strconv.ParseUint(s, 10, 16)
	}

	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}

	return uint16(v), nil
}

// Address is a 16 bit address that is written to YAML in hexadecimal.
type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("%#04x", uint16(a))
}

// MarshalYAML implements the yaml.Marshaler interface.
func (a Address) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: fmt.Sprintf("0x%04x", uint16(a)),
	}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Address) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return curated.Errorf(InvalidAddress, fmt.Sprintf("line %d", value.Line))
	}
	v, err := ParseAddress(value.Value)
	if err != nil {
		return err
	}
	*a = Address(v)
	return nil
}

// ResetEntry is the value of the entry field that starts the program at the
// reset vector.
const ResetEntry = "reset"

// Entry is the start address of a program. If Reset is true then the program
// starts at the address in the reset vector and Address is ignored.
type Entry struct {
	Reset   bool
	Address Address
}

func (e Entry) String() string {
	if e.Reset {
		return ResetEntry
	}
	return e.Address.String()
}

// ParseEntry parses the word "reset" or an address. See ParseAddress().
func ParseEntry(s string) (Entry, error) {
	if strings.EqualFold(strings.TrimSpace(s), ResetEntry) {
		return Entry{Reset: true}, nil
	}
	v, err := ParseAddress(s)
	if err != nil {
		return Entry{}, curated.Errorf(InvalidEntry, s)
	}
	return Entry{Address: Address(v)}, nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (e Entry) MarshalYAML() (any, error) {
	if e.Reset {
		return ResetEntry, nil
	}
	return e.Address.MarshalYAML()
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return curated.Errorf(InvalidEntry, fmt.Sprintf("line %d", value.Line))
	}
	v, err := ParseEntry(value.Value)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
