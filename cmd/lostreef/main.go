// lostreef is a terminal arcade game about a small fish surviving an
// increasingly hostile reef.
//
// Usage:
//
//	lostreef play            - Dive into the reef
//	lostreef scores          - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lostreef/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/lostreef/lostreef/internal/games/reef"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lostreef",
	Short: "Lost Reef - An ocean survival arcade game for your terminal",
	Long: `Lost Reef is a terminal arcade game. Swim a little fish through
an endless reef, pop jellyfish, crabs and sharks with bubble shots,
collect pearls and power-ups, and see how deep you can go.

Examples:
  lostreef play
  lostreef play --difficulty hard
  lostreef play --seed 42
  lostreef scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lostreef/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
