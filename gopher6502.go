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


package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/hardware/memory/ram"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/profile"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/terminal/easyterm"
	"github.com/jetsetilly/gopher6502/version"
)

// exit values used with atexit.Exit()
const (
	exitSuccess   = 0
	exitParse     = 10
	exitMode      = 20
	exitNoSuccess = 30
	exitInterrupt = 40
)

func main() {
	// the first interrupt asks the running machine to stop. a second
	// interrupt exits immediately
	quit := make(chan bool)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		close(quit)
		<-intChan
		fmt.Print("\r\n")
		atexit.Exit(exitInterrupt)
	}()

	atexit.Exit(launch(quit))
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with atexit.Exit().
func launch(quit <-chan bool) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParse
	}

	exitVal := exitSuccess

	switch md.Mode() {
	case "RUN":
		exitVal, err = run(md, quit)

	case "TERM":
		err = term(md, quit)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitVal
}

// machineFlags are the flags shared by the RUN and TERM modes. the values of
// flags that have been set on the command line override the values in the
// machine profile.
type machineFlags struct {
	profile   *string
	load      uint16
	entry     profile.Entry
	trap      uint16
	limit     *int
	noDecimal *bool
	jmpBug    *bool
	log       *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	mf := &machineFlags{}

	mf.profile = md.AddString("profile", "", "machine profile (YAML)")

	md.AddFunc("load", "address at which the image is loaded", func(s string) error {
		var err error
		mf.load, err = profile.ParseAddress(s)
		return err
	})

	md.AddFunc("entry", "entry address or 'reset' to use the reset vector", func(s string) error {
		var err error
		mf.entry, err = profile.ParseEntry(s)
		return err
	})

	md.AddFunc("trap", "address that indicates a successful run", func(s string) error {
		var err error
		mf.trap, err = profile.ParseAddress(s)
		return err
	})

	mf.limit = md.AddInt("limit", 0, "maximum number of instructions to execute (0 is no limit)")
	mf.noDecimal = md.AddBool("nodecimal", false, "ADC and SBC ignore the decimal flag")
	mf.jmpBug = md.AddBool("jmpbug", false, "emulate the indirect JMP page boundary bug")
	mf.log = md.AddBool("log", false, "echo debugging log to stderr")

	return mf
}

// resolve the machine profile from the -profile flag, the flags that have
// been set and the remaining argument.
func (mf *machineFlags) resolve(md *modalflag.Modes) (profile.Profile, error) {
	if *mf.log {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	} else {
		logger.SetEcho(nil)
	}

	prof := profile.Default()
	if *mf.profile != "" {
		var err error
		prof, err = profile.Load(*mf.profile)
		if err != nil {
			return profile.Profile{}, err
		}
		logger.Logf(logger.Allow, "gopher6502", "using profile %s", *mf.profile)
	}

	md.Visit(func(name string) {
		switch name {
		case "load":
			prof.Load = profile.Address(mf.load)
		case "entry":
			prof.Entry = mf.entry
		case "trap":
			t := profile.Address(mf.trap)
			prof.Trap = &t
		case "limit":
			prof.Limit = *mf.limit
		case "nodecimal":
			prof.NoDecimal = *mf.noDecimal
		case "jmpbug":
			prof.JMPBug = *mf.jmpBug
		default:
			return
		}
		logger.Logf(logger.Allow, "gopher6502", "-%s overrides profile", name)
	})

	switch len(md.RemainingArgs()) {
	case 0:
		if prof.Image == "" {
			return profile.Profile{}, fmt.Errorf("image required for %s mode", md)
		}
	case 1:
		prof.Image = md.GetArg(0)
	default:
		return profile.Profile{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	return prof, nil
}

// interruptCheck returns a continue check function that ends the run when
// any of the channels is closed.
func interruptCheck(chans ...<-chan bool) func() (govern.State, error) {
	var performanceFilter int
	return func() (govern.State, error) {
		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceFilter = 0

		for _, c := range chans {
			select {
			case <-c:
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	}
}

func run(md *modalflag.Modes, quit <-chan bool) (int, error) {
	md.NewMode()

	mf := addMachineFlags(md)
	trace := md.AddBool("trace", false, "print every instruction executed")
	useConsole := md.AddBool("console", false, "attach console at default addresses if the profile has none")
	memvizFile := md.AddString("memviz", "", "write final CPU state to file as a graphviz (dot) graph")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitSuccess, err
	}

	prof, err := mf.resolve(md)
	if err != nil {
		return exitSuccess, err
	}

	if *useConsole && prof.Console == nil {
		prof.Console = profile.DefaultConsole()
	}

	if stats != nil && *stats {
		atexit.Register(statsview.Launch(md.Output))
	}

	m, err := hardware.NewMachine(prof)
	if err != nil {
		return exitSuccess, err
	}

	m.SetConsoleOutput(md.Output)
	if *trace {
		m.SetTrace(md.Output)
	}

	outcome, err := m.Run(interruptCheck(quit))
	if err != nil {
		return exitSuccess, err
	}

	writeSummary(md, m, outcome)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return exitSuccess, err
		}

		// the snapshot is unplumbed so that memory is not part of the graph
		snapshot := m.CPU.Snapshot()
		snapshot.Plumb(nil)
		memviz.Map(f, snapshot)

		if err := f.Close(); err != nil {
			return exitSuccess, err
		}
	}

	if !outcome.Success {
		return exitNoSuccess, nil
	}

	return exitSuccess, nil
}

// writeSummary prints the outcome of a run as a table.
func writeSummary(md *modalflag.Modes, m *hardware.Machine, outcome hardware.Outcome) {
	var result string
	switch {
	case outcome.Success:
		result = "success"
	case outcome.Trapped:
		result = "trapped"
	case outcome.LimitReached:
		result = "limit"
	default:
		result = "stopped"
	}

	t := table.NewWriter()
	t.SetOutputMirror(md.Output)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Result", "PC", "Instructions", "CPU"})
	t.AppendRow(table.Row{result, fmt.Sprintf("%#04x", outcome.PC), outcome.Instructions, m.CPU.String()})
	t.Render()
}

func term(md *modalflag.Modes, quit <-chan bool) error {
	md.NewMode()

	mf := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := mf.resolve(md)
	if err != nil {
		return err
	}

	if prof.Console == nil {
		prof.Console = profile.DefaultConsole()
	}

	m, err := hardware.NewMachine(prof)
	if err != nil {
		return err
	}
	m.SetConsoleOutput(os.Stdout)

	var pt easyterm.Terminal
	if err := pt.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	atexit.Register(pt.CleanUp)

	// the terminal is in raw mode while the machine is running so the
	// interrupt and suspend keys arrive as ordinary input
	pt.RawMode()
	defer pt.CanonicalMode()
	if err := pt.Flush(); err != nil {
		logger.Log(logger.Allow, "gopher6502", err)
	}

	keys := make(chan byte, 16)
	go func() {
		if err := pt.ReadKeys(keys); err != nil {
			logger.Log(logger.Allow, "gopher6502", err)
		}
	}()

	stop := make(chan bool)
	go func() {
		for k := range keys {
			switch k {
			case easyterm.KeyInterrupt:
				close(stop)
				return
			case easyterm.KeySuspend:
				pt.CanonicalMode()
				if err := easyterm.SuspendProcess(); err != nil {
					logger.Log(logger.Allow, "gopher6502", err)
				}
				pt.RawMode()
			default:
				m.Console.Feed(easyterm.TranslateKey(k))
			}
		}
	}()

	outcome, err := m.Run(interruptCheck(quit, stop))
	if err != nil {
		return err
	}

	pt.Print("\r\n* %s\r\n", outcome)

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	var load uint16
	var from, to uint16
	var fromSet, toSet bool

	md.AddFunc("load", "address at which the image is loaded", func(s string) error {
		var err error
		load, err = profile.ParseAddress(s)
		return err
	})
	md.AddFunc("from", "first address to disassemble (default is the load address)", func(s string) error {
		var err error
		from, err = profile.ParseAddress(s)
		fromSet = true
		return err
	})
	md.AddFunc("to", "last address to disassemble (default is the end of the image)", func(s string) error {
		var err error
		to, err = profile.ParseAddress(s)
		toSet = true
		return err
	})
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	header := md.AddBool("header", false, "include column headers")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("image required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		mem := ram.NewRAM()
		if err := mem.Load(load, data); err != nil {
			return err
		}

		if !fromSet {
			from = load
		}
		if !toSet {
			to = load + uint16(len(data)-1)
		}

		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			Header:   *header,
		}
		disassembly.Write(md.Output, disassembly.Disassemble(mem, from, to), attr)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
