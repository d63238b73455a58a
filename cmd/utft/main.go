package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/eppesuig/baan-utft/transcoder"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input UTF-T file (default stdin)")
		outFile     = flag.String("out", "", "Output UTF-8 file (default stdout)")
		compat      = flag.Bool("compat", false, "Reproduce the original Baan decoder bit for bit")
		hexDump     = flag.Bool("hex", false, "Hex dump the output instead of writing raw bytes")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
	)
	flag.Parse()

	mode := transcoder.ModeStrict
	if *compat {
		mode = transcoder.ModeCompat
	}

	if *interactive {
		if err := runInteractive(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, mode, *hexDump, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, mode transcoder.Mode, hexDump, verbose bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer logger.Sync()
		transcoder.SetLogger(logger)
	}

	var data []byte
	var err error
	if inFile != "" {
		data, err = os.ReadFile(inFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no input file and stdin is a terminal; use -in <file> or pipe UTF-T data (or -i for the inspector)")
		}
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	out, err := transcoder.NewWithMode(mode).Transcode(data)
	if err != nil {
		return fmt.Errorf("transcode: %w", err)
	}

	if hexDump {
		out = []byte(hex.Dump(out))
	}

	if outFile != "" {
		return os.WriteFile(outFile, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}
