// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tliron/commonlog"
	"golang.org/x/term"

	"github.com/ezrec/ibr/config"
	"github.com/ezrec/ibr/interpreter"
	ibrio "github.com/ezrec/ibr/io"
	"github.com/ezrec/ibr/memory"
	"github.com/ezrec/ibr/repl"
)

func main() {
	err := run()
	if errors.Is(err, repl.ErrPanic) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	var configPath string
	var code string
	var cells string
	var verbose bool

	flag.StringVar(&configPath, "config", "", "Configuration file (default "+config.DEFAULT_PATH+", if present)")
	flag.StringVar(&code, "e", "", "Code to run")
	flag.StringVar(&cells, "cells", "", "Cell mode, 'unbounded' or 'byte'")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 || (flag.NArg() == 1 && len(code) != 0) {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return
	}

	if len(cells) != 0 {
		cfg.Interpreter.Cells = cells
	}

	mode, err := cfg.Mode()
	if err != nil {
		return
	}

	verbosity := cfg.Log.Verbosity
	if verbose {
		verbosity = max(verbosity, 2)
	}
	commonlog.Configure(verbosity, nil)

	tape := &ibrio.Tape{Input: os.Stdin, Output: os.Stdout}

	in := interpreter.NewInterpreter(tape)
	in.Memory = memory.New(mode)

	var lines repl.LineReader = repl.NewPlain(os.Stdin, os.Stdout)
	var output io.Writer = os.Stdout

	switch {
	case flag.NArg() == 1:
		// Run a source file.
		path := flag.Arg(0)
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		code, err = ibrio.Source(inf)
		if err != nil {
			return
		}

		in.Session = newREPL(cfg, in, lines, output).Session()
		err = in.Run(code)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		fmt.Println()
	case len(code) != 0:
		// Run inline code.
		in.Session = newREPL(cfg, in, lines, output).Session()
		err = in.Run(ibrio.StripSpace(code))
		if err != nil {
			return
		}
		fmt.Println()
	default:
		// Interactive session.
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			var state *term.State
			state, err = term.MakeRaw(fd)
			if err != nil {
				return
			}
			defer term.Restore(fd, state)

			screen := repl.NewTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout})
			lines = screen
			output = screen
			in.Console = screen
		}

		rpl := newREPL(cfg, in, lines, output)
		in.Session = rpl.Session()
		err = rpl.Run(1)
	}

	return
}

func newREPL(cfg *config.Config, in *interpreter.Interpreter, lines repl.LineReader, output io.Writer) (rpl *repl.REPL) {
	rpl = repl.New(in, lines, output)
	rpl.Name = cfg.Repl.Name
	return
}
