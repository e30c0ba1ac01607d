// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/cmd"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/ch8asm/asm"
	"github.com/ezrec/ch8asm/config"
	"github.com/ezrec/ch8asm/preprocess"
	"github.com/ezrec/ch8asm/translate"
)

var f = translate.From

var (
	ErrTerminalOutput = errors.New(f("refusing to write a binary to a terminal, use -f or -o"))
	ErrUsage          = errors.New(f("usage"))
)

// ErrKeyValue is a flag argument missing its '='.
type ErrKeyValue string

func (err ErrKeyValue) Error() string {
	return f("'%v' is not KEY=VALUE", string(err))
}

// keyValues collects repeated KEY=VALUE flags.
type keyValues []string

func (kv *keyValues) String() string {
	return strings.Join(*kv, ",")
}

func (kv *keyValues) Set(text string) error {
	if !strings.Contains(text, "=") {
		return ErrKeyValue(text)
	}
	*kv = append(*kv, text)
	return nil
}

// app is the state shared by the commands.
type app struct {
	settings *config.Settings
	output   string
	force    bool
	stdout   io.Writer
}

func main() {
	var configFile string
	var output string
	var force bool
	var verbose bool
	var listing bool
	var defines keyValues
	var sets keyValues

	log.SetFlags(0)
	log.SetPrefix("ch8asm: ")

	flag.StringVar(&configFile, "c", "", "Starlark settings file")
	flag.Var(&defines, "D", "Predefine an alias NAME=VALUE")
	flag.Var(&sets, "s", "Override a setting KEY=VALUE")
	flag.StringVar(&output, "o", "", "Output file, - for stdout")
	flag.BoolVar(&force, "f", false, "Write a binary even to a terminal")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "l", false, "Print a program listing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] <command> [<file>]\n\n", os.Args[0])
		cmds.DisplayHelp(flag.CommandLine.Output())
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	settings := config.NewSettings()
	if len(configFile) != 0 {
		var err error
		settings, err = config.Load(configFile, nil)
		if err != nil {
			log.Printf("%v: %v", configFile, err)
			atexit.Exit(1)
		}
	}

	for _, kv := range sets {
		key, value, _ := strings.Cut(kv, "=")
		err := settings.SetString(key, value)
		if err != nil {
			log.Printf("-s %v: %v", kv, err)
			atexit.Exit(1)
		}
	}

	if verbose {
		settings.Verbose = true
	}
	if listing {
		settings.Listing = true
	}

	for _, kv := range defines {
		name, value, _ := strings.Cut(kv, "=")
		if settings.Aliases == nil {
			settings.Aliases = map[string]string{}
		}
		settings.Aliases[name] = value
	}

	c, _, err := cmds.LookupCommand(flag.Arg(0))
	switch {
	case err == cmd.ErrNotFound:
		log.Printf("command not found: %v", flag.Arg(0))
		atexit.Exit(2)
	case err == cmd.ErrAmbiguous:
		log.Printf("command is ambiguous: %v", flag.Arg(0))
		atexit.Exit(2)
	case err != nil:
		log.Printf("%v", err)
		atexit.Exit(2)
	}

	a := &app{
		settings: settings,
		output:   output,
		force:    force,
		stdout:   os.Stdout,
	}

	handler := c.Data.(func(*app, *cmd.Command, []string) error)
	err = handler(a, c, flag.Args()[1:])
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// assembler returns an assembler configured by the settings.
func (a *app) assembler() *asm.Assembler {
	as := &asm.Assembler{
		Verbose: a.settings.Verbose,
		Origin:  a.settings.Origin,
		Jobs:    a.settings.Jobs,
	}
	for name, value := range a.settings.Aliases {
		as.Predefine(name, value)
	}
	return as
}

// source returns the single source file argument.
func source(c *cmd.Command, args []string) (name string, err error) {
	if len(args) != 1 {
		err = fmt.Errorf("%w: %v", ErrUsage, c.Usage)
		return
	}
	name = args[0]
	return
}

// readSource reads the named file, or stdin for "-".
func readSource(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// create opens the named output file, or stdout for "-". A file that is not
// committed is removed at exit.
func (a *app) create(name string, binary bool) (w io.Writer, commit func() error, err error) {
	if name == "-" {
		if binary && !a.force && term.IsTerminal(int(os.Stdout.Fd())) {
			err = ErrTerminalOutput
			return
		}
		w = a.stdout
		commit = func() error { return nil }
		return
	}

	outf, err := os.Create(name)
	if err != nil {
		return
	}

	done := false
	atexit.Register(func() {
		if !done {
			outf.Close()
			os.Remove(name)
		}
	})

	w = outf
	commit = func() error {
		err := outf.Close()
		if err == nil {
			done = true
		}
		return err
	}
	return
}

func (a *app) cmdAssemble(c *cmd.Command, args []string) error {
	name, err := source(c, args)
	if err != nil {
		return err
	}

	text, err := readSource(name)
	if err != nil {
		return err
	}

	prog, err := a.assembler().Assemble(string(text))
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	if a.settings.Listing {
		err = prog.Listing(os.Stderr)
		if err != nil {
			return err
		}
	}

	output := a.output
	if len(output) == 0 {
		if name == "-" {
			output = "-"
		} else {
			output = strings.TrimSuffix(name, filepath.Ext(name)) + ".ch8"
		}
	}

	w, commit, err := a.create(output, true)
	if err != nil {
		return err
	}

	_, err = prog.WriteTo(w)
	if err != nil {
		return err
	}

	return commit()
}

func (a *app) cmdPreprocess(c *cmd.Command, args []string) error {
	name, err := source(c, args)
	if err != nil {
		return err
	}

	text, err := readSource(name)
	if err != nil {
		return err
	}

	pp := &preprocess.Preprocessor{
		Origin:  a.settings.Origin,
		Verbose: a.settings.Verbose,
	}
	for alias, value := range a.settings.Aliases {
		pp.Predefine(alias, value)
	}

	lines, err := pp.Process(string(text))
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	output := a.output
	if len(output) == 0 {
		output = "-"
	}

	w, commit, err := a.create(output, false)
	if err != nil {
		return err
	}

	for _, line := range preprocess.Texts(lines) {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}

	return commit()
}

func (a *app) cmdDisassemble(c *cmd.Command, args []string) error {
	name, err := source(c, args)
	if err != nil {
		return err
	}

	bin, err := readSource(name)
	if err != nil {
		return err
	}

	output := a.output
	if len(output) == 0 {
		output = "-"
	}

	w, commit, err := a.create(output, false)
	if err != nil {
		return err
	}

	prog := asm.Disassemble(bin, a.settings.Origin)
	err = prog.Listing(w)
	if err != nil {
		return err
	}

	return commit()
}

func (a *app) cmdSettings(c *cmd.Command, args []string) error {
	a.settings.Display(a.stdout)
	return nil
}

func (a *app) cmdHelp(c *cmd.Command, args []string) error {
	return cmds.GetHelp(a.stdout, args)
}
