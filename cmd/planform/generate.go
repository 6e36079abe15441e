package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planform/planform"
	"github.com/planform/planform/internal/cli"
	"github.com/planform/planform/internal/encoder/dxf"
	"github.com/planform/planform/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Render a floor of a design document as a DXF drawing",
	Long: `Validates the document and, when it is free of errors, renders the
requested floor level as an ASCII DXF file. With --watch the drawing is
regenerated every time the input file changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("level", "l", 0, "Floor level to render")
	generateCmd.Flags().StringP("out", "o", "", "Output path (default: input name with .dxf extension, '-' for stdout)")
	generateCmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the input file changes")
}

func runGenerate(cmd *cobra.Command, path string) error {
	engine, cfg, err := newEngine(cmd)
	if err != nil {
		return err
	}
	level, _ := cmd.Flags().GetInt("level")
	out, _ := cmd.Flags().GetString("out")
	watch, _ := cmd.Flags().GetBool("watch")

	if out == "" {
		if path == "-" {
			out = "-"
		} else {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + ".dxf"
		}
	}

	generate := func() error {
		return generateOnce(engine, path, out, level)
	}

	if !watch {
		return generate()
	}
	if path == "-" {
		return fmt.Errorf("--watch requires a file path, not stdin")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	return cli.Watch(ctx, path, logger, func() error {
		err := generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		}
		return err
	})
}

func generateOnce(engine *planform.Engine, path, out string, level int) error {
	raw, err := readInput(path)
	if err != nil {
		return err
	}

	doc, diags, err := engine.Generate(raw, level)
	if err != nil {
		cli.PrintDiagnostics(os.Stderr, diags)
		return err
	}
	cli.PrintDiagnostics(os.Stderr, diags)

	if out == "-" {
		return dxf.Encode(doc, os.Stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := dxf.Encode(doc, f); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d entities)\n", out, doc.EntityCount())
	return nil
}
