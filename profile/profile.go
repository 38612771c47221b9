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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/console"
)

// Sentinal error patterns for profile loading.
const (
	LoadError   = "profile: %v"
	ParseError  = "profile: %s: %v"
	NoImage     = "profile: no image specified"
	BadFeedback = "profile: feedback: irq and nmi bits must be between -1 and 7"
)

// Feedback describes the interrupt feedback port. A bit value of -1 means the
// line is not connected.
type Feedback struct {
	Address   Address `yaml:"address"`
	IRQ       int     `yaml:"irq"`
	NMI       int     `yaml:"nmi"`
	ActiveLow bool    `yaml:"activelow,omitempty"`
}

// Console describes the memory-mapped character terminal.
type Console struct {
	Out Address `yaml:"out"`
	In  Address `yaml:"in"`
}

// Profile is the description of a machine. The zero value is not useful. Use
// Default() or Load().
type Profile struct {
	// path of the binary image to load into memory
	Image string `yaml:"image,omitempty"`

	// address at which the image is loaded
	Load Address `yaml:"load"`

	// where execution starts
	Entry Entry `yaml:"entry"`

	// if not nil, reaching the trap address causes the machine to stop. a
	// self-jump at any address also stops the machine
	Trap *Address `yaml:"trap,omitempty"`

	// maximum number of instructions to execute. zero means no limit
	Limit int `yaml:"limit,omitempty"`

	Feedback *Feedback `yaml:"feedback,omitempty"`
	Console  *Console  `yaml:"console,omitempty"`

	// CPU options
	NoDecimal bool `yaml:"nodecimal,omitempty"`
	JMPBug    bool `yaml:"jmpbug,omitempty"`
}

// Default returns a profile for a flat 64KiB RAM machine with no devices that
// starts at the address in the reset vector.
func Default() Profile {
	return Profile{
		Entry: Entry{Reset: true},
	}
}

// DefaultConsole returns a Console description using the default register
// addresses.
func DefaultConsole() *Console {
	return &Console{
		Out: Address(console.DefaultOut),
		In:  Address(console.DefaultIn),
	}
}

// Parse a profile from YAML data. Fields not specified in the data take the
// values of Default(). Unknown fields are an error.
func Parse(data []byte) (Profile, error) {
	p := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, curated.Errorf(LoadError, err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Load a profile from a file. A relative image path is taken to be relative
// to the directory of the profile file.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, curated.Errorf(LoadError, err)
	}

	p, err := Parse(data)
	if err != nil {
		return Profile{}, curated.Errorf(ParseError, path, err)
	}

	if p.Image != "" && !filepath.IsAbs(p.Image) {
		p.Image = filepath.Join(filepath.Dir(path), p.Image)
	}

	return p, nil
}

// Validate checks the profile for values that cannot be used to build a
// machine.
func (p Profile) Validate() error {
	if p.Feedback != nil {
		if p.Feedback.IRQ < -1 || p.Feedback.IRQ > 7 || p.Feedback.NMI < -1 || p.Feedback.NMI > 7 {
			return curated.Errorf(BadFeedback)
		}
	}
	return nil
}

// Marshal the profile to YAML.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
