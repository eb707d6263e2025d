package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/gradebook/internal/ui"
)

// Style variables for the gradebook TUI.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	itemStyle        lipgloss.Style
	selectedStyle    lipgloss.Style
	labelStyle       lipgloss.Style
	valueStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	promptStyle      lipgloss.Style
	statusOKStyle    lipgloss.Style
	statusWarnStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	itemStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	selectedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	statusWarnStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}
