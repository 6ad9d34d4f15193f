package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the default drifter configuration as YAML.

Save it to ~/.drifter/configs/drifter.yaml (or pass --config to play)
and edit the values to tune physics, gateways and obstacle spacing.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML("drifter")
	if data == nil {
		return fmt.Errorf("no default configuration available")
	}
	_, err := os.Stdout.Write(data)
	return err
}
