// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/ebitenplay"
	"github.com/jetsetilly/gopher8/gui/keymap"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/dump"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// the hosts available for running a program.
type host int

const (
	hostSDL host = iota
	hostEbiten
	hostTerminal
)

// SDL must be serviced from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "EBITEN", "TERM", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, hostSDL)

	case "EBITEN":
		err = run(md, hostEbiten)

	case "TERM":
		err = run(md, hostTerminal)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes, h host) error {
	md.NewMode()

	speed := md.AddInt("speed", 0, "instructions per second (0 to use saved preference)")
	seed := md.AddInt("seed", 0, "seed for the random number generator (0 to use saved preference)")
	scale := md.AddInt("scale", 0, "window scaling (0 to use saved preference)")
	layout := md.AddString("layout", "", fmt.Sprintf("keyboard layout: %s", strings.Join(keymap.Layouts, ", ")))
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session. eg. \"vm.speed::1000; host.scale::5\"")
	log := md.AddBool("log", false, "echo log to stderr")
	wavFile := md.AddString("wav", "", "record audio to wav file")
	memvizFile := md.AddString("memviz", "", "write graph of VM state to file when program ends")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewAddress()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	// flags that duplicate preferences are added to the command line stack
	// along with the prefs flag
	var cmdline []string
	if *cmdlinePrefs != "" {
		cmdline = append(cmdline, *cmdlinePrefs)
	}
	if *speed > 0 {
		cmdline = append(cmdline, fmt.Sprintf("vm.speed::%d", *speed))
	}
	if *seed != 0 {
		cmdline = append(cmdline, fmt.Sprintf("vm.seed::%d", *seed))
	}
	if *scale > 0 {
		cmdline = append(cmdline, fmt.Sprintf("host.scale::%d", *scale))
	}
	if *layout != "" {
		cmdline = append(cmdline, fmt.Sprintf("host.keylayout::%s", *layout))
	}

	prefs.PushCommandLineStack(strings.Join(cmdline, "; "))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}()

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := programloader.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return err
	}

	vmPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	hostPrefs, err := gui.NewPreferences()
	if err != nil {
		return err
	}

	vm, err := hardware.NewVM(instance.NewInstance(nil, vmPrefs))
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	// the recorder is added to whichever host is created
	var rec *wavwriter.WavWriter
	if *wavFile != "" {
		rec, err = wavwriter.New(*wavFile)
		if err != nil {
			return err
		}
	}

	switch h {
	case hostSDL:
		scr, err := sdlplay.NewSdlPlay(vm, hostPrefs, ld.ShortName(), ld.Data)
		if err != nil {
			return err
		}
		defer scr.Destroy()
		if rec != nil {
			scr.AddToneRecorder(rec)
		}
		err = scr.Run()
		if err != nil {
			return err
		}

	case hostEbiten:
		scr, err := ebitenplay.NewEbitenPlay(vm, hostPrefs, ld.ShortName(), ld.Data)
		if err != nil {
			return err
		}
		if rec != nil {
			scr.AddToneRecorder(rec)
		}
		err = scr.Run()
		if err != nil {
			return err
		}

	case hostTerminal:
		keys, err := hostPrefs.Keymap()
		if err != nil {
			return err
		}
		trm, err := termplay.NewTermPlay(vm, keys, ld.ShortName(), ld.Data)
		if err != nil {
			return err
		}
		if rec != nil {
			trm.AddToneRecorder(rec)
		}
		err = trm.Run()
		if err != nil {
			return err
		}
	}

	if rec != nil {
		err = rec.End()
		if err != nil {
			return err
		}
	}

	if n := vm.Unrecognised(); n > 0 {
		fmt.Printf("! %d unrecognised instructions\n", n)
	}

	if *memvizFile != "" {
		err = dump.ToFile(*memvizFile, vm)
		if err != nil {
			return err
		}
		fmt.Printf("! VM state written to %s\n", *memvizFile)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	all := md.AddBool("all", false, "include words not reached by following the program flow")
	grep := md.AddString("grep", "", "only show instructions matching the search string")
	caseSensitive := md.AddBool("case", false, "grep search is case sensitive")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		dsm, err := disassembly.FromLoader(programloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}

		if *grep != "" {
			dsm.Grep(md.Output, disassembly.GrepAll, *grep, *caseSensitive)
			return nil
		}

		if *all {
			dsm.Write(md.Output, disassembly.EntryLevelDecoded)
		} else {
			dsm.Write(md.Output, disassembly.EntryLevelBlessed)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		err = performance.Check(md.Output, prf, programloader.NewLoader(md.GetArg(0)), *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}

func statsviewAddress() string {
	if statsview.Available() {
		return statsview.URL()
	}
	return "requires statsview build tag"
}
