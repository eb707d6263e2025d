package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and student count.
type HeaderModel struct {
	version  string
	students int
	width    int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetStudents updates the displayed student count.
func (h *HeaderModel) SetStudents(n int) {
	h.students = n
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Student Gradebook"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")
	count := versionStyle.Render(fmt.Sprintf("%d students", h.students))

	row := title + pipe + count
	gap := h.width - 2 - lipgloss.Width(row)
	row += spaces(gap)

	if h.width <= 0 {
		return headerStyle.Render(row)
	}
	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
