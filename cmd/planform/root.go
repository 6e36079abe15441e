package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/planform/planform"
	"github.com/planform/planform/internal/config"
	"github.com/planform/planform/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "planform",
	Short: "Planform turns architectural design documents into CAD drawings",
	Long: `Planform validates architectural design documents (JSON or YAML) and
generates deterministic, layered 2D floor plan drawings from them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a planform.yaml configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newEngine builds an Engine from the persistent flags.
func newEngine(cmd *cobra.Command) (*planform.Engine, *config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = logging.ParseLevel("debug")
	}

	engine := planform.New(
		planform.WithTolerance(cfg.Tolerance),
		planform.WithDrawingOptions(cfg.DrawingOptions()),
		planform.WithLogger(logging.New(level)),
	)
	return engine, cfg, nil
}

// readInput loads the document argument, with "-" meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}
