// drifter is a terminal side-scrolling runner with teleportation gateways.
//
// Usage:
//
//	drifter play             - Play in the current terminal
//	drifter serve            - Start SSH server for remote play
//	drifter scores           - Browse recorded sessions
//	drifter list             - List registered games
//	drifter config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.drifter/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/chewishmasuf/PortalDrifterDashCross/internal/games/drifter"
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
	Use:   "drifter",
	Short: "Portal Drifter - a gateway runner in your terminal",
	Long: `Portal Drifter is a terminal runner: jump over the obstacle field,
fire linked teleportation gateways to skip past hazards, and survive
all four dimensions.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - Browse recorded sessions
  list     - List registered games
  config   - Print the default configuration

Examples:
  drifter play
  drifter play --seed 42
  drifter serve --ssh :2222
  drifter scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.drifter/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
