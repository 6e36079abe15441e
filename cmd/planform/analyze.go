package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planform/planform/internal/cli"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Report room areas, perimeters and opening counts for a floor",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntP("level", "l", 0, "Floor level to analyze")
	analyzeCmd.Flags().Bool("json", false, "Emit the report as JSON instead of a rendered table")
}

func runAnalyze(cmd *cobra.Command, path string) error {
	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}
	level, _ := cmd.Flags().GetInt("level")
	asJSON, _ := cmd.Flags().GetBool("json")

	raw, err := readInput(path)
	if err != nil {
		return err
	}

	report, diags, err := engine.Analyze(raw, level)
	if err != nil {
		cli.PrintDiagnostics(os.Stderr, diags)
		return err
	}
	cli.PrintDiagnostics(os.Stderr, diags)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return cli.RenderReport(os.Stdout, report)
}
