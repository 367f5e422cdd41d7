package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imgforge/bootstage/pkg/install"
	"github.com/imgforge/bootstage/pkg/spec"
)

// RenderReport renders an installation report in the given format.
// FormatAuto picks terminal or plain text based on stdout.
func RenderReport(report install.Report, format Format) string {
	if format == FormatAuto {
		format = DetectFormat(os.Stdout)
	}
	styled := format == FormatTerminal

	var b strings.Builder
	switch report.State {
	case spec.StateDisabled:
		b.WriteString(styledLine(styled, MutedStyle, "boot files: not requested"))

	case spec.StateNoMatches:
		b.WriteString(styledLine(styled, WarningStyle, "warning: "+report.Warning))

	default:
		header := fmt.Sprintf("installed %d boot file%s",
			report.Installed, plural(report.Installed))
		b.WriteString(styledLine(styled, SuccessStyle, header))
		for _, dest := range report.Destinations {
			var line string
			if styled {
				line = ListItemStyle.Render(PathStyle.Render(dest))
			} else {
				line = "  " + dest
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func styledLine(styled bool, style lipgloss.Style, s string) string {
	if styled {
		return style.Render(s) + "\n"
	}
	return s + "\n"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
