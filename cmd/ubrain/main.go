// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// ubrain runs programs on the μBrain processor model.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ezrec/ubrain/cpu"
	"github.com/ezrec/ubrain/emulator"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"withargs" help:"run a program until it halts"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Program  string `arg:"" type:"existingfile" help:"program to run (raw operators, or a listing with --assemble)"`
	Assemble bool   `short:"a" help:"assemble a mnemonic listing instead of loading raw operators"`
	Input    string `short:"i" default:"-" help:"input device byte stream ('-' for stdin)"`
	Output   string `short:"o" default:"-" help:"output device byte stream ('-' for stdout)"`
	DumpTape string `short:"d" type:"path" help:"write the data tape to a file after the run"`
	Limit    int    `short:"n" help:"stop after N ticks (0 runs until halt)"`
	Verbose  bool   `short:"v" help:"verbose logging"`
}

func (r *runCmd) Run() (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = r.Verbose

	prgf, err := os.Open(r.Program)
	if err != nil {
		return
	}
	defer prgf.Close()

	if r.Assemble {
		asm := &cpu.Assembler{Verbose: r.Verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(prgf)
	} else {
		emu.Program, err = cpu.LoadProgram(prgf)
	}
	if err != nil {
		return
	}

	if r.Input == "-" {
		emu.In.Input = os.Stdin
		if isTerminal(os.Stdin.Fd()) {
			var restore func()
			restore, err = enterRawTerm(os.Stdin.Fd())
			if err != nil {
				return
			}
			defer restore()
		}
	} else {
		var inf *os.File
		inf, err = os.Open(r.Input)
		if err != nil {
			return
		}
		defer inf.Close()
		emu.In.Input = inf
	}

	if r.Output == "-" {
		emu.Out.Output = os.Stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(r.Output)
		if err != nil {
			return
		}
		defer ouf.Close()
		emu.Out.Output = ouf
	}

	emu.Reset()

	status, err := emu.Run(r.Limit)
	if err != nil {
		return
	}

	if r.Verbose {
		log.Printf("ubrain: %v after %d ticks", status, emu.Core.Ticks)
	}

	if r.DumpTape != "" {
		var dmp *os.File
		dmp, err = os.Create(r.DumpTape)
		if err != nil {
			return
		}
		defer dmp.Close()
		err = emu.Tape.DumpImage(dmp)
	}

	return
}
