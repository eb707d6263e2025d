package gradebook

import (
	apperrors "github.com/agbru/gradebook/internal/errors"
)

// student owns its subjects in first-grade order.
type student struct {
	name     string
	subjects map[string][]float64
	order    []string
}

func (s *student) allGrades() []float64 {
	var all []float64
	for _, subject := range s.order {
		all = append(all, s.subjects[subject]...)
	}
	return all
}

// Gradebook is the in-memory student store. The zero value is not usable;
// construct one with New. A Gradebook is not safe for concurrent use.
type Gradebook struct {
	students map[string]*student
	order    []string
}

var _ Store = (*Gradebook)(nil)

// New returns an empty gradebook.
func New() *Gradebook {
	return &Gradebook{students: make(map[string]*student)}
}

// AddStudent inserts a student with no subjects.
//
// It returns a ValidationError for an empty name and a soft DuplicateError
// when the name is already present, in which case nothing changes.
func (g *Gradebook) AddStudent(name string) error {
	if name == "" {
		return apperrors.ValidationError{Field: "name", Message: "student name cannot be empty"}
	}
	if _, ok := g.students[name]; ok {
		return apperrors.DuplicateError{Student: name}
	}
	g.students[name] = &student{name: name, subjects: make(map[string][]float64)}
	g.order = append(g.order, name)
	return nil
}

// AddGrade parses raw and appends it to the student's sequence for subject,
// creating the subject on its first grade. It returns the stored value.
//
// The student is looked up before the grade is parsed, so an unknown student
// reports NotFoundError even when raw is also invalid.
func (g *Gradebook) AddGrade(studentName, subject, raw string) (float64, error) {
	s, ok := g.students[studentName]
	if !ok {
		return 0, apperrors.NotFoundError{Student: studentName}
	}
	if subject == "" {
		return 0, apperrors.ValidationError{Field: "subject", Message: "subject cannot be empty"}
	}
	value, err := ParseGrade(raw)
	if err != nil {
		return 0, err
	}
	if _, seen := s.subjects[subject]; !seen {
		s.order = append(s.order, subject)
	}
	s.subjects[subject] = append(s.subjects[subject], value)
	return value, nil
}

// SubjectAverage returns the mean of one subject's grades. It returns NoData
// when the student is unknown, the subject is unknown, or no grades exist.
func (g *Gradebook) SubjectAverage(studentName, subject string) Average {
	s, ok := g.students[studentName]
	if !ok {
		return NoData
	}
	grades, ok := s.subjects[subject]
	if !ok {
		return NoData
	}
	return mean(grades)
}

// OverallAverage returns the mean of every grade across the student's subjects.
//
// An unknown student yields NoData. A known student with no grades yields a
// valid 0, unlike SubjectAverage: callers that need to tell these apart should
// use StudentReport, which reports NoSubjects.
func (g *Gradebook) OverallAverage(studentName string) Average {
	s, ok := g.students[studentName]
	if !ok {
		return NoData
	}
	if avg := mean(s.allGrades()); avg.Valid {
		return avg
	}
	return Some(0)
}

// StudentReport builds the per-subject breakdown for one student.
func (g *Gradebook) StudentReport(studentName string) (Report, error) {
	s, ok := g.students[studentName]
	if !ok {
		return Report{}, apperrors.NotFoundError{Student: studentName}
	}

	report := Report{Student: s.name}
	if len(s.order) == 0 {
		report.NoSubjects = true
		report.Overall = NoData
		return report, nil
	}

	report.Subjects = make([]SubjectReport, 0, len(s.order))
	for _, subject := range s.order {
		grades := s.subjects[subject]
		report.Subjects = append(report.Subjects, SubjectReport{
			Subject: subject,
			Grades:  cloneGrades(grades),
			Average: g.SubjectAverage(studentName, subject),
		})
	}
	report.Overall = g.OverallAverage(studentName)
	return report, nil
}

// AllStudentsSummary lists every student in insertion order with their
// overall average. Empty is set when the gradebook has no students.
func (g *Gradebook) AllStudentsSummary() Summary {
	if len(g.order) == 0 {
		return Summary{Empty: true, Entries: []SummaryEntry{}}
	}
	entries := make([]SummaryEntry, 0, len(g.order))
	for _, name := range g.order {
		entries = append(entries, SummaryEntry{Student: name, Overall: g.OverallAverage(name)})
	}
	return Summary{Entries: entries}
}

// Student returns a snapshot of one student's subjects.
func (g *Gradebook) Student(name string) (StudentView, bool) {
	s, ok := g.students[name]
	if !ok {
		return StudentView{}, false
	}
	view := StudentView{Name: s.name, Subjects: make([]SubjectGrades, 0, len(s.order))}
	for _, subject := range s.order {
		view.Subjects = append(view.Subjects, SubjectGrades{Subject: subject, Grades: cloneGrades(s.subjects[subject])})
	}
	return view, true
}

// HasStudent reports whether name is present.
func (g *Gradebook) HasStudent(name string) bool {
	_, ok := g.students[name]
	return ok
}

// Len returns the number of students.
func (g *Gradebook) Len() int {
	return len(g.order)
}

// Names returns student names in insertion order.
func (g *Gradebook) Names() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

func cloneGrades(grades []float64) []float64 {
	out := make([]float64, len(grades))
	copy(out, grades)
	return out
}
