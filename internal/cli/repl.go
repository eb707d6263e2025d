// Package cli provides the menu-driven console interface to the gradebook,
// its output formatting, and shell completion scripts.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/logging"
	"github.com/agbru/gradebook/internal/ui"
)

// REPLConfig holds configuration for the menu session.
type REPLConfig struct {
	// Logger receives debug events for each action. Nil means no logging.
	Logger logging.Logger
	// HideBanner suppresses the welcome banner.
	HideBanner bool
}

// REPL is an interactive menu session over a gradebook store.
type REPL struct {
	config REPLConfig
	store  gradebook.Store
	logger logging.Logger
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewREPL creates a new menu session.
//
// Parameters:
//   - store: The gradebook the menu reads and writes.
//   - config: Session configuration.
//
// Returns:
//   - *REPL: A new REPL instance reading stdin and writing stdout.
func NewREPL(store gradebook.Store, config REPLConfig) *REPL {
	logger := config.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &REPL{
		config: config,
		store:  store,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// errEOF signals that input ended in the middle of an action.
var errEOF = errors.New("end of input")

// Start runs the menu until the user chooses Exit or input ends.
// Data errors are reported and the menu continues.
func (r *REPL) Start() {
	r.reader = bufio.NewReader(r.in)
	if !r.config.HideBanner {
		r.printBanner()
	}

	for {
		DisplayMenu(r.out)
		choice, err := r.prompt("Enter your choice (1-5): ")
		if err != nil {
			r.goodbye()
			return
		}
		if !r.processChoice(choice) {
			return
		}
	}
}

// printBanner displays the welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s📚 Student Gradebook%s                  %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════╝%s\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) goodbye() {
	fmt.Fprintf(r.out, "\n%sExiting Grade Tracker. Goodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
}

// prompt prints label and returns the next trimmed input line.
// A final line without a newline is still returned; errEOF means no input was left.
func (r *REPL) prompt(label string) (string, error) {
	fmt.Fprint(r.out, ui.ColorGrey()+label+ui.ColorReset())
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", errEOF
	}
	return strings.TrimSpace(line), nil
}

// processChoice executes one menu choice.
// Returns false if the session should end.
func (r *REPL) processChoice(choice string) bool {
	var err error
	switch strings.ToLower(choice) {
	case "1":
		err = r.cmdAddStudent()
	case "2":
		err = r.cmdAddGrade()
	case "3":
		err = r.cmdReport()
	case "4":
		DisplaySummary(r.out, r.store.AllStudentsSummary())
	case "5", "exit", "quit", "q":
		r.goodbye()
		return false
	case "", "help", "h", "?":
		// The loop reprints the menu.
	default:
		fmt.Fprintf(r.out, "%sInvalid choice. Please enter a number between 1 and 5.%s\n", ui.ColorRed(), ui.ColorReset())
	}

	if errors.Is(err, errEOF) {
		r.goodbye()
		return false
	}
	return true
}

// cmdAddStudent handles menu choice 1.
func (r *REPL) cmdAddStudent() error {
	name, err := r.prompt("Enter student's name: ")
	if err != nil {
		return err
	}
	if name == "" {
		r.printError("Student name cannot be empty.")
		return nil
	}

	if err := r.store.AddStudent(name); err != nil {
		if apperrors.IsSoft(err) {
			fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorYellow(), FormatError(err), ui.ColorReset())
		} else {
			r.printError(FormatError(err))
		}
		r.logger.Debug("add student rejected", logging.String("student", name), logging.Err(err))
		return nil
	}
	fmt.Fprintf(r.out, "%sStudent '%s' added successfully.%s\n", ui.ColorGreen(), name, ui.ColorReset())
	r.logger.Debug("student added", logging.String("student", name))
	return nil
}

// cmdAddGrade handles menu choice 2. The student is checked before the
// subject and grade are asked for.
func (r *REPL) cmdAddGrade() error {
	name, err := r.prompt("Enter student's name: ")
	if err != nil {
		return err
	}
	if name == "" {
		r.printError("Student name cannot be empty.")
		return nil
	}
	if !r.store.HasStudent(name) {
		r.printError(fmt.Sprintf("Error: Student '%s' not found. Please add the student first.", name))
		return nil
	}

	subject, err := r.prompt("Enter subject name: ")
	if err != nil {
		return err
	}
	raw, err := r.prompt("Enter grade: ")
	if err != nil {
		return err
	}
	if subject == "" || raw == "" {
		r.printError("Student name, subject, and grade cannot be empty.")
		return nil
	}

	value, err := r.store.AddGrade(name, subject, raw)
	if err != nil {
		r.printError(FormatError(err))
		r.logger.Debug("add grade rejected",
			logging.String("student", name), logging.String("subject", subject), logging.Err(err))
		return nil
	}
	fmt.Fprintf(r.out, "%sGrade %s added for %s in %s.%s\n",
		ui.ColorGreen(), FormatGrade(value), name, subject, ui.ColorReset())
	r.logger.Debug("grade added",
		logging.String("student", name), logging.String("subject", subject), logging.Float64("grade", value))
	return nil
}

// cmdReport handles menu choice 3.
func (r *REPL) cmdReport() error {
	name, err := r.prompt("Enter student's name to view report: ")
	if err != nil {
		return err
	}
	if name == "" {
		r.printError("Student name cannot be empty.")
		return nil
	}

	report, err := r.store.StudentReport(name)
	if err != nil {
		r.printError(FormatError(err))
		return nil
	}
	DisplayReport(r.out, report)
	return nil
}

func (r *REPL) printError(msg string) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), msg, ui.ColorReset())
}
