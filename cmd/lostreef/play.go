package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lostreef/lostreef/internal/config"
	"github.com/lostreef/lostreef/internal/core"
	"github.com/lostreef/lostreef/internal/games/reef"
	"github.com/lostreef/lostreef/internal/platform/tui"
	"github.com/lostreef/lostreef/internal/registry"
	"github.com/lostreef/lostreef/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Dive into the reef",
	Long: `Start a game session.

Controls:
  Arrows/WASD - Swim
  Space       - Shoot bubbles
  Enter       - Confirm menu selection
  Esc         - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More health, more power-ups
  normal - The intended experience
  hard   - Less health, faster enemies, fewer power-ups

Examples:
  lostreef play
  lostreef play --difficulty easy
  lostreef play --config ./my-reef.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	switch config.DifficultyPreset(flagDifficulty) {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults when not attached to a terminal
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	reef.SetConfigPath(flagConfig)
	reef.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))

	game, err := registry.Create("reef")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, runs will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
