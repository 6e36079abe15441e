package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planform/planform/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a design document for structural, model and geometry errors",
	Long: `Runs the document through all three validation stages and prints every
finding. Exit code 1 means at least one error-severity diagnostic.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}
	raw, err := readInput(path)
	if err != nil {
		return err
	}

	diags, err := engine.Validate(raw)
	if err != nil {
		return err
	}

	cli.PrintDiagnostics(os.Stdout, diags)
	cli.PrintSummary(os.Stdout, diags)
	if diags.HasErrors() {
		os.Exit(1)
	}
	return nil
}
