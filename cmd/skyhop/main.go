// skyhop is an endless side-scrolling platformer for the terminal.
//
// Usage:
//
//	skyhop                   - Start with the title menu
//	skyhop play              - Jump straight into a run
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores            - Show the top runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyhop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ndmitry/skyhop/internal/games/skyhop"
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
	Use:   "skyhop",
	Short: "Sky Hop - an endless platformer in your terminal",
	Long: `Sky Hop is a terminal-based endless platformer. Hop across procedurally
generated platforms, dodge obstacles, collect coins and powerups, and see
how far you get before the world outruns you.

Running without a subcommand opens the title menu.

Available commands:
  play     - Jump straight into a run
  serve    - Start SSH server for remote play
  scores   - View the top runs

Examples:
  skyhop
  skyhop play --difficulty hard
  skyhop play --seed 42
  skyhop serve --ssh :2222
  skyhop scores`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
