// Command rdgc compiles a human-readable HID report layout description
// into report descriptor bytes.
//
// Usage:
//
//	rdgc [flags] [source.rdg]
//
// With no source argument the layout is read from stdin. The binary
// descriptor is written to stdout unless -o is given; as a guard
// against spraying raw bytes into an interactive session, writing
// binary to a terminal requires -o or -x.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/juliandroske/rdg/compiler"
	"github.com/juliandroske/rdg/pkg"
	"github.com/juliandroske/rdg/tables"
)

var (
	output    = flag.String("o", "", "Write descriptor bytes to `file` instead of stdout")
	hexDump   = flag.Bool("x", false, "Write a hex dump instead of raw bytes")
	extension = flag.String("t", "", "Load extra lookup tables from YAML `file`")
	verbose   = flag.Bool("v", false, "Enable verbose logging")
	quiet     = flag.Bool("q", false, "Suppress all logging")
	jsonOut   = flag.Bool("json", false, "Output logs as JSON")
)

func main() {
	flag.Parse()

	if *verbose {
		pkg.SetLogLevel(slog.LevelDebug)
	}
	if *jsonOut {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	}
	if *quiet {
		pkg.SetLogger(pkg.NewLogger(io.Discard, nil))
	}

	if err := run(); err != nil {
		pkg.LogError(pkg.ComponentCLI, "rdgc failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	reg := tables.Default()
	if *extension != "" {
		f, err := os.Open(*extension)
		if err != nil {
			return err
		}
		err = reg.LoadExtensions(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	src, name, err := openSource()
	if err != nil {
		return err
	}
	defer src.Close()

	desc, err := compiler.New(reg).Compile(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(desc) == 0 {
		pkg.LogWarn(pkg.ComponentCLI, "descriptor is empty", "source", name)
	}
	pkg.LogInfo(pkg.ComponentCLI, "descriptor compiled",
		"source", name,
		"bytes", len(desc))

	return write(desc)
}

func openSource() (io.ReadCloser, string, error) {
	switch flag.NArg() {
	case 0:
		return os.Stdin, "stdin", nil
	case 1:
		f, err := os.Open(flag.Arg(0))
		return f, flag.Arg(0), err
	default:
		return nil, "", fmt.Errorf("expected at most one source file, got %d", flag.NArg())
	}
}

func write(desc []byte) error {
	if *hexDump {
		out := os.Stdout
		if *output != "" {
			f, err := os.Create(*output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		_, err := fmt.Fprintln(out, hex.EncodeToString(desc))
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, desc, 0o644)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write %d raw bytes to a terminal (use -o or -x)", len(desc))
	}
	_, err := os.Stdout.Write(desc)
	return err
}
