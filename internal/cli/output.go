// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplaySummary], [DisplayMenu].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatGrade], [FormatGrades], [FormatError].

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/ui"
)

const (
	reportFooter  = "------------------------"
	summaryFooter = "--------------------------"
)

// FormatGrade renders a stored grade the way it was entered, always keeping
// a fractional part: 90 becomes "90.0", 85.5 stays "85.5".
func FormatGrade(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}

// FormatGrades joins a grade sequence with ", ".
func FormatGrades(grades []float64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = FormatGrade(g)
	}
	return strings.Join(parts, ", ")
}

// FormatError turns a store error into the message shown to the user.
func FormatError(err error) string {
	var (
		notFound  apperrors.NotFoundError
		format    apperrors.InvalidFormatError
		outRange  apperrors.OutOfRangeError
		duplicate apperrors.DuplicateError
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Error: Student '%s' not found.", notFound.Student)
	case errors.As(err, &format):
		return "Error: Invalid grade. Please enter a numeric value."
	case errors.As(err, &outRange):
		return fmt.Sprintf("Error: Grade must be between %g and %g.", outRange.Min, outRange.Max)
	case errors.As(err, &duplicate):
		return fmt.Sprintf("Student '%s' already exists.", duplicate.Student)
	default:
		return "Error: " + err.Error()
	}
}

// DisplayMenu prints the main menu.
func DisplayMenu(out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Student Grade Tracker ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintln(out, "1. Add Student")
	fmt.Fprintln(out, "2. Add Grade")
	fmt.Fprintln(out, "3. View Student Report")
	fmt.Fprintln(out, "4. View All Students Summary")
	fmt.Fprintln(out, "5. Exit")
}

// DisplayReport prints one student's per-subject breakdown.
//
// Parameters:
//   - out: The output writer.
//   - report: The report returned by Store.StudentReport.
func DisplayReport(out io.Writer, report gradebook.Report) {
	fmt.Fprintf(out, "\n%s--- Report for %s%s%s%s ---%s\n",
		ui.ColorBold(), ui.ColorUnderline(), report.Student, ui.ColorReset(), ui.ColorBold(), ui.ColorReset())
	if report.NoSubjects {
		fmt.Fprintln(out, "No subjects or grades recorded for this student yet.")
		fmt.Fprintf(out, "Overall Average: %s\n", report.Overall)
		fmt.Fprintln(out, reportFooter)
		return
	}

	for _, s := range report.Subjects {
		grades := FormatGrades(s.Grades)
		if grades == "" {
			grades = "No grades yet"
		}
		fmt.Fprintf(out, "  Subject: %s%s%s\n", ui.ColorBlue(), s.Subject, ui.ColorReset())
		fmt.Fprintf(out, "    Grades: %s\n", grades)
		fmt.Fprintf(out, "%s    Average: %s%s\n", ui.ColorCyan(), s.Average, ui.ColorReset())
	}
	fmt.Fprintf(out, "%sOverall Average: %s%s\n", ui.ColorGreen(), report.Overall, ui.ColorReset())
	fmt.Fprintln(out, reportFooter)
}

// DisplaySummary prints every student's overall average.
func DisplaySummary(out io.Writer, summary gradebook.Summary) {
	if summary.Empty {
		fmt.Fprintf(out, "%sNo students in the tracker yet.%s\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "\n%s--- All Students Summary ---%s\n", ui.ColorBold(), ui.ColorReset())
	for _, e := range summary.Entries {
		fmt.Fprintf(out, "%s: Overall Average = %s\n", e.Student, e.Overall)
	}
	fmt.Fprintln(out, summaryFooter)
}
