// Package tui implements the interactive terminal dashboard for the gradebook
// using bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/gradebook/internal/cli"
	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/logging"
)

// inputMode says what, if anything, the text input is collecting.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeStudentName
	modeGradeSubject
	modeGradeValue
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// Layout constants for the TUI.
const (
	listPanelWidth = 28
	minWidth       = 60
)

// Model is the root bubbletea model for the gradebook TUI.
// The store is only touched from Update, which bubbletea runs on one goroutine.
type Model struct {
	store  gradebook.Store
	logger logging.Logger
	ctx    context.Context

	header HeaderModel
	keymap KeyMap
	help   help.Model
	input  textinput.Model

	names          []string
	cursor         int
	mode           inputMode
	pendingSubject string
	status         string
	statusKind     statusKind
	width          int
	height         int
}

// NewModel creates a TUI model over store.
func NewModel(ctx context.Context, store gradebook.Store, logger logging.Logger, version string) Model {
	if logger == nil {
		logger = logging.Nop()
	}
	in := textinput.New()
	in.CharLimit = 64
	in.Prompt = "> "

	m := Model{
		store:  store,
		logger: logger,
		ctx:    ctx,
		header: NewHeaderModel(version),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		input:  in,
		status: "Press a to add a student, ? for help.",
	}
	m.refresh()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ContextCancelledMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.handleInputKey(msg)
		}
		return m.handleBrowseKey(msg)
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.AddStudent):
		return m.startInput(modeStudentName, "student name")

	case key.Matches(msg, m.keymap.AddGrade):
		if len(m.names) == 0 {
			m.setStatus(statusError, "Add a student first.")
			return m, nil
		}
		return m.startInput(modeGradeSubject, "subject")
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.stopInput()
		m.setStatus(statusInfo, "Cancelled.")
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startInput focuses the text input for mode.
func (m Model) startInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m, m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeBrowse
	m.pendingSubject = ""
	m.input.Reset()
	m.input.Blur()
}

// submit applies the current input to the store.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeStudentName:
		m.stopInput()
		m.addStudent(value)

	case modeGradeSubject:
		if value == "" {
			m.setStatus(statusError, "Subject cannot be empty.")
			return m, nil
		}
		m.pendingSubject = value
		return m.startInput(modeGradeValue, "grade (0-100)")

	case modeGradeValue:
		subject := m.pendingSubject
		m.stopInput()
		m.addGrade(m.selected(), subject, value)
	}
	return m, nil
}

func (m *Model) addStudent(name string) {
	if name == "" {
		m.setStatus(statusError, "Student name cannot be empty.")
		return
	}
	err := m.store.AddStudent(name)
	switch {
	case err == nil:
		m.refresh()
		m.selectName(name)
		m.setStatus(statusOK, fmt.Sprintf("Student '%s' added successfully.", name))
		m.logger.Debug("student added", logging.String("student", name))
	case apperrors.IsSoft(err):
		m.selectName(name)
		m.setStatus(statusWarn, cli.FormatError(err))
	default:
		m.setStatus(statusError, cli.FormatError(err))
	}
}

func (m *Model) addGrade(student, subject, raw string) {
	if raw == "" {
		m.setStatus(statusError, "Grade cannot be empty.")
		return
	}
	value, err := m.store.AddGrade(student, subject, raw)
	if err != nil {
		m.setStatus(statusError, cli.FormatError(err))
		m.logger.Debug("add grade rejected", logging.String("student", student), logging.Err(err))
		return
	}
	m.setStatus(statusOK, fmt.Sprintf("Grade %s added for %s in %s.", cli.FormatGrade(value), student, subject))
	m.logger.Debug("grade added",
		logging.String("student", student), logging.String("subject", subject), logging.Float64("grade", value))
}

func (m *Model) refresh() {
	m.names = m.store.Names()
	m.header.SetStudents(len(m.names))
	if m.cursor >= len(m.names) {
		m.cursor = max(len(m.names)-1, 0)
	}
}

func (m *Model) selectName(name string) {
	for i, n := range m.names {
		if n == name {
			m.cursor = i
			return
		}
	}
}

// selected returns the highlighted student, or "" when there are none.
func (m Model) selected() string {
	if m.cursor < len(m.names) {
		return m.names[m.cursor]
	}
	return ""
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// View renders the whole screen.
func (m Model) View() string {
	width := max(m.width, minWidth)

	list := panelStyle.Width(listPanelWidth).Render(m.renderList())
	report := panelStyle.Width(width - listPanelWidth - 4).Render(m.renderReport())
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, report)

	parts := []string{m.header.View(), body}
	if m.mode != modeBrowse {
		parts = append(parts, promptStyle.Render(m.promptLabel())+" "+m.input.View())
	}
	parts = append(parts, m.renderStatus(), m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modeStudentName:
		return "New student:"
	case modeGradeSubject:
		return fmt.Sprintf("Subject for %s:", m.selected())
	case modeGradeValue:
		return fmt.Sprintf("Grade for %s in %s:", m.selected(), m.pendingSubject)
	}
	return ""
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Students"))
	b.WriteString("\n")
	if len(m.names) == 0 {
		b.WriteString(dimStyle.Render("No students yet."))
		return b.String()
	}
	for i, name := range m.names {
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString(itemStyle.Render("  " + name))
		}
	}
	return b.String()
}

func (m Model) renderReport() string {
	name := m.selected()
	if name == "" {
		return dimStyle.Render("Select a student to see the report.")
	}
	report, err := m.store.StudentReport(name)
	if err != nil {
		return statusErrorStyle.Render(cli.FormatError(err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Report for " + report.Student))
	b.WriteString("\n")
	if report.NoSubjects {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No subjects or grades recorded for this student yet."))
	}
	for _, s := range report.Subjects {
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(s.Subject))
		b.WriteString("\n  ")
		b.WriteString(labelStyle.Render("Grades: "))
		b.WriteString(cli.FormatGrades(s.Grades))
		b.WriteString("\n  ")
		b.WriteString(labelStyle.Render("Average: "))
		b.WriteString(s.Average.String())
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Overall Average: "))
	b.WriteString(valueStyle.Render(report.Overall.String()))
	return b.String()
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusOK:
		return statusOKStyle.Render(m.status)
	case statusWarn:
		return statusWarnStyle.Render(m.status)
	case statusError:
		return statusErrorStyle.Render(m.status)
	default:
		return dimStyle.Render(m.status)
	}
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, store gradebook.Store, logger logging.Logger, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, store, logger, version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitSuccess
		}
		model.logger.Error("tui failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
