// Package main runs the elemental arena in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/cory-johannsen/arena/internal/app"
	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/encounter"
)

// Exit codes.
const (
	exitVictory = 0
	exitError   = 1
	exitDefeat  = 2
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty uses built-in defaults")
	seed := flag.Uint64("seed", 0, "random seed for a reproducible game; 0 keeps the configured value")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	os.Exit(run(cfg))
}

func run(cfg config.Config) int {
	a, cleanup, err := initializeApp(cfg, app.Stdio{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		log.Printf("initializing arena: %v", err)
		return exitError
	}
	defer cleanup()

	state, err := a.Run(context.Background())
	switch {
	case err != nil:
		return exitError
	case state == encounter.FinalVictory:
		return exitVictory
	default:
		return exitDefeat
	}
}
