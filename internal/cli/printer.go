// Package cli holds presentation helpers shared by the command-line surface:
// colored diagnostic output, markdown report rendering and the file watcher
// driving regenerate-on-save.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/planform/planform/pkg/domain"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel  = color.New(color.FgYellow, color.Bold).SprintFunc()
	stageLabel = color.New(color.FgCyan).SprintFunc()
	pathLabel  = color.New(color.Faint).SprintFunc()
	okLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// PrintDiagnostics writes every finding to w, one per line, ordered as the
// pipeline produced them. Color degrades automatically on non-TTY writers.
func PrintDiagnostics(w io.Writer, diags domain.Diagnostics) {
	for _, d := range diags {
		label := warnLabel("WARN ")
		if d.Severity == domain.SeverityError {
			label = errorLabel("ERROR")
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			label,
			stageLabel(fmt.Sprintf("[%s]", d.Stage)),
			pathLabel(d.Path),
			d.Message)
	}
}

// PrintSummary writes the one-line verdict that follows the diagnostics.
func PrintSummary(w io.Writer, diags domain.Diagnostics) {
	errs, warns := 0, 0
	for _, d := range diags {
		if d.Severity == domain.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	switch {
	case errs > 0:
		fmt.Fprintf(w, "%s %d error(s), %d warning(s)\n", errorLabel("INVALID"), errs, warns)
	case warns > 0:
		fmt.Fprintf(w, "%s %d warning(s)\n", okLabel("VALID"), warns)
	default:
		fmt.Fprintf(w, "%s document passed all validation stages\n", okLabel("VALID"))
	}
}
