package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planform/planform/pkg/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a design document between JSON and YAML",
	Long: `Re-encodes the document in the requested format without validating it,
so broken documents can still be converted for inspection.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Conversion failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "", "Target format: json or yaml (default: the other one)")
	convertCmd.Flags().StringP("out", "o", "-", "Output path ('-' for stdout)")
}

func runConvert(cmd *cobra.Command, path string) error {
	target, _ := cmd.Flags().GetString("to")
	out, _ := cmd.Flags().GetString("out")

	raw, err := readInput(path)
	if err != nil {
		return err
	}

	var format convert.Format
	if target == "" {
		if convert.Detect(raw) == convert.FormatJSON {
			format = convert.FormatYAML
		} else {
			format = convert.FormatJSON
		}
	} else {
		format, err = convert.ParseFormat(target)
		if err != nil {
			return err
		}
	}

	converted, err := convert.Convert(raw, format)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(converted)
		return err
	}
	return os.WriteFile(out, converted, 0o644)
}
