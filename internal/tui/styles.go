package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true)
	focusedButtonStyle = buttonStyle.Reverse(true).Bold(true)
)

// Cell styles of the board canvas, indexed by cellStyle.
var canvasStyles = [...]lipgloss.Style{
	styleBlank:    lipgloss.NewStyle(),
	styleNote:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	styleSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	stylePending:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Faint(true),
	styleDeleting: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	styleDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
}

func renderButton(label string, focused bool) string {
	if focused {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
