package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ldot.dev/ldot/internal/shell"
)

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorMagenta colors text magenta
func ColorMagenta(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim colors text gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// FormatCommandEcho renders the line printed before a command starts
func FormatCommandEcho(command string) string {
	return "> " + ColorMagenta(command)
}

// FormatOutcome renders one report line. Successful commands are green,
// non-zero exits yellow, and commands that never started red.
func FormatOutcome(o shell.Outcome) string {
	if o.Err != nil {
		return ColorRed(o.Detail())
	}
	line := fmt.Sprintf("%q %s", o.Command, o.Detail())
	if o.Succeeded {
		return ColorGreen(line)
	}
	return ColorYellow(line)
}

// FormatStatus renders the overall result of a run
func FormatStatus(report *shell.Report) string {
	if report.Status == shell.AllSucceeded {
		return ColorGreen(fmt.Sprintf("All %d commands succeeded", len(report.Outcomes)))
	}
	return ColorYellow(fmt.Sprintf("%d of %d commands failed", len(report.Failed()), len(report.Outcomes)))
}
