package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/coffview/coff"
)

func main() {
	var (
		objFile     = flag.String("file", "", "Path to COFF object file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log parse stages to stderr")
		color       = flag.String("color", "auto", "Colorize output: auto, always or never")
	)
	flag.Parse()

	if *objFile == "" && flag.NArg() == 1 {
		*objFile = flag.Arg(0)
	}
	if *objFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: coffview [-v] [-color auto|always|never] <file.obj>")
		fmt.Fprintln(os.Stderr, "       coffview -i <file.obj>  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		coff.SetLogger(l)
	}

	if *interactive {
		if err := runInteractive(*objFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*objFile, *color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(objFile, color string) error {
	st, err := newStyles(os.Stdout, color)
	if err != nil {
		return err
	}

	details, err := coff.Read(objFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", objFile, err)
	}

	fmt.Print(renderDetails(st, objFile, details))
	return nil
}
