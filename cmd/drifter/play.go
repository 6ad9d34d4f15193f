package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/games/drifter"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/platform/tui"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/registry"
	"github.com/chewishmasuf/PortalDrifterDashCross/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Portal Drifter",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump
  F          - Fire gateway pair
  Enter      - Skip dimension-complete countdown
  P          - Pause
  R          - Restart (after the run ends)
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Examples:
  drifter play
  drifter play --seed 42
  drifter play --config ./my-drifter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	drifter.SetConfigPath(flagConfig)

	game, err := registry.Create("drifter")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
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
