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

package klaus2m5_test

import (
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/profile"
	"github.com/jetsetilly/gopher6502/test"
)

const (
	// whether to create a CPU profile of the host computer when running the
	// functional test
	profiling = false

	// size of the trace history kept for reporting failures
	historySize = 4096
)

// loadMachine creates a machine from the named profile in the testdata
// directory. the test is skipped if the binary named by the profile is missing
func loadMachine(t *testing.T, name string) *hardware.Machine {
	t.Helper()

	prof, err := profile.Load(filepath.Join("testdata", name))
	test.DemandSuccess(t, err)

	if _, err := os.Stat(prof.Image); err != nil {
		t.Skipf("test binary not available: %s", prof.Image)
	}

	m, err := hardware.NewMachine(prof)
	test.DemandSuccess(t, err)

	return m
}

// run the named test until it traps. if the program does not reach the trap
// address of the profile then the test is run again with the trace enabled
// and the most recent instructions are logged
func run(t *testing.T, name string) *hardware.Machine {
	t.Helper()

	m := loadMachine(t, name)
	outcome, err := m.Run(nil)
	test.DemandSuccess(t, err)

	if outcome.Success {
		t.Logf("%s", outcome)
		return m
	}

	history, err := test.NewRingWriter(historySize)
	test.DemandSuccess(t, err)

	m = loadMachine(t, name)
	m.SetTrace(history)
	outcome, err = m.Run(nil)
	test.DemandSuccess(t, err)

	// the second run should fail in the same way as the first
	test.ExpectFailure(t, outcome.Success)

	t.Logf("%s", history)
	t.Logf("%s", m)
	t.Fatalf("%s", outcome)

	return nil
}

func TestFunctional(t *testing.T) {
	if profiling {
		f, err := os.Create("cpu_performance.profile")
		test.DemandSuccess(t, err)
		defer func() {
			test.ExpectSuccess(t, f.Close())
		}()

		err = pprof.StartCPUProfile(f)
		test.DemandSuccess(t, err)
		defer pprof.StopCPUProfile()
	}

	run(t, "6502_functional_test.yaml")
}

func TestDecimal(t *testing.T) {
	m := run(t, "6502_decimal_test.yaml")

	// the test writes the result of the test to the ERROR byte
	const errorByte = 0x000b
	test.ExpectEquality(t, m.RAM.Peek(errorByte), 0x00)
}

func TestInterrupt(t *testing.T) {
	run(t, "6502_interrupt_test.yaml")
}
