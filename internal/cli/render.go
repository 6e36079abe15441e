package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/planform/planform/pkg/analysis"
)

// RenderReport writes the floor report to w as markdown. When w is the
// terminal the markdown is styled with glamour; otherwise the raw markdown
// is written so the output stays pipeable.
func RenderReport(w io.Writer, report *analysis.FloorReport) error {
	md := reportMarkdown(report)

	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, md)
		return err
	}

	width := 100
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
		width = cols
	}

	style := glamour.WithAutoStyle()
	if termenv.EnvColorProfile() == termenv.Ascii {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}

	out, err := renderer.Render(md)
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}
	_, err = io.WriteString(w, out)
	return err
}

func reportMarkdown(report *analysis.FloorReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Floor %d Analysis\n\n", report.FloorLevel)
	fmt.Fprintf(&b, "- **Rooms:** %d\n", report.TotalRooms)
	fmt.Fprintf(&b, "- **Total area:** %.2f m²\n", report.TotalArea)
	fmt.Fprintf(&b, "- **Total perimeter:** %.2f m\n", report.TotalPerimeter)
	fmt.Fprintf(&b, "- **Doors:** %d · **Windows:** %d · **Furniture:** %d\n\n",
		report.TotalDoors, report.TotalWindows, report.TotalFurniture)

	if len(report.Rooms) == 0 {
		return b.String()
	}

	b.WriteString("| Room | Type | Area (m²) | Perimeter (m) | Doors | Windows | Furniture |\n")
	b.WriteString("|------|------|-----------|---------------|-------|---------|-----------|\n")
	for _, room := range report.Rooms {
		fmt.Fprintf(&b, "| %s | %s | %.2f | %.2f | %d | %d | %d |\n",
			room.Name, room.Type, room.Area, room.Perimeter,
			room.DoorCount, room.WindowCount, room.FurnitureCount)
	}
	b.WriteString("\n")
	return b.String()
}
