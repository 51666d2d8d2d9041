// Command lc3sim runs LC-3 object files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lc3sim/lc3sim/core"
	"github.com/lc3sim/lc3sim/loader"
)

var (
	verbose   = flag.Bool("v", false, "Verbose output")
	maxCycles = flag.Uint64("max-cycles", 0, "Abort after this many fetch-execute cycles (0 = unlimited)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: lc3sim [options] <program.obj> [program.obj ...]\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	m := core.NewMachine(core.WithMaxCycles(*maxCycles))

	for _, path := range flag.Args() {
		prog, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lc3sim: %v\n", err)
			os.Exit(1)
		}

		if *verbose {
			fmt.Printf("Loaded: %s\n", path)
			fmt.Printf("Start address: 0x%04X\n", prog.StartAddr)
			fmt.Printf("Words: %d\n", len(prog.Words))
		}

		m.Load(prog.StartAddr, prog.Words)
	}

	exitCode := m.Run()

	if *verbose {
		fmt.Printf("\nCycles executed: %d\n", m.CycleCount())
		fmt.Printf("PC: 0x%04X\n", m.RegFile().PC)
		for i, r := range m.RegFile().R {
			fmt.Printf("R%d: 0x%04X\n", i, r)
		}
	}

	os.Exit(exitCode)
}
