package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Status output goes to stderr: stdout is reserved for assembly data so
// commands stay usable in pipelines.

var (
	colorGreen = lipgloss.Color("35")  // Green - success
	colorCyan  = lipgloss.Color("36")  // Teal - numbers
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleNumber      = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(os.Stderr, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printStats prints break and join counts on a single line.
func printStats(breaks, joins int) {
	line := "  " +
		styleNumber.Render(fmt.Sprintf("%d", breaks)) + styleDim.Render(" breaks") +
		styleDim.Render(" · ") +
		styleNumber.Render(fmt.Sprintf("%d", joins)) + styleDim.Render(" joins")
	fmt.Fprintln(os.Stderr, line)
}
