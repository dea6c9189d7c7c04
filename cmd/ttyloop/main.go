// Command ttyloop plays connector puzzles in a terminal. Rotate the tiles until every stub meets
// a stub of its neighbour and none points off the board.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/game"
	"github.com/beka-birhanu/loopgrid/generator"
	logger "github.com/beka-birhanu/loopgrid/infrastruture/log"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	appLogger, err := logger.New("TTYLOOP", config.ColorCyan, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(2)
	}

	seed := generator.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	if cfg.Solution {
		solved, err := generator.Solution(cfg.Width, cfg.Height, seed)
		if err != nil {
			appLogger.Error(err.Error())
			os.Exit(1)
		}
		fmt.Print(solved.String())
		return
	}

	session, err := game.NewSession(cfg.Width, cfg.Height, seed)
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	shell := NewShell(session, os.Stdin, os.Stdout, !cfg.NoColor, generator.RandomSeed, appLogger)
	if err := shell.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Reading input: %v", err))
		os.Exit(1)
	}
}
