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

package thomharte

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *testMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type avoids recursion into this method
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("6502", "v1")

// the break and reserved bits do not exist in the status register
const unusedBits = 0x30

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Skip(err)
	}

	var tested int

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil {
			t.Logf("ignoring %s", e.Name())
			continue
		}

		if instructions.Lookup(uint8(opcode)).Undocumented {
			continue
		}

		testThomHarte(t, filepath.Join(testsPath, e.Name()))
		tested++
	}

	if tested == 0 {
		t.Skipf("no test files in %s", testsPath)
	}
}

func testThomHarte(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	// the tests were recorded on an NMOS part
	mc.IndirectJMPBug = true

	for i, s := range tests {
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		mc.Step()

		var fail bool

		fail = !test.ExpectSuccess(t, mc.LastResult.IsValid()) || fail
		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()|unusedBits, uint8(s.Final.P)|unusedBits, testFile, i, "Status") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on line %d (%s)", testFile, i, s.Name)
		}
	}
}
