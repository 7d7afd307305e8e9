package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // teal - primary actions
	colorDim  = lipgloss.Color("240") // dim gray - muted text
)

var (
	// styleTitle for headings in command output.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary text (addresses, hints).
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
