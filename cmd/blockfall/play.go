package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls (configurable in blockfall.yaml):
  Left/Right, h/l  - Move
  Up, k            - Rotate
  Down, j          - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1200ms at level 0, 100ms floor
  normal - 1000ms at level 0, 50ms faster per level, 50ms floor
  hard   - 700ms at level 0, 40ms floor

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := openSession(cfg)

	runErr := tui.Run(s.deps, runtimeConfig())

	// Close store before potential exit
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
