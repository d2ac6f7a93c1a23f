// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                - Play a game (same as "blockfall play")
//	blockfall play           - Play a game
//	blockfall menu           - Start the title menu
//	blockfall serve          - Start SSH server for remote play
//	blockfall scores         - Show high scores
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--db <path>           - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <name>   - Gravity preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game played in the terminal.
Pieces fall into a 10x20 well; fill rows to clear them and score.

Available commands:
  play     - Play a game directly (default)
  menu     - Title menu with the scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores --recent`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Gravity preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
