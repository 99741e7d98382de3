package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal, values
	colorGreen = lipgloss.Color("35")  // found walks
	colorRed   = lipgloss.Color("167") // no walk
	colorDim   = lipgloss.Color("240") // labels
)

var (
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailure = lipgloss.NewStyle().Foreground(colorRed)
)

// field renders one "label: value" line of a human-readable summary.
func field(label string, value interface{}) string {
	return styleLabel.Render(label+":") + " " + styleValue.Render(fmt.Sprint(value))
}
