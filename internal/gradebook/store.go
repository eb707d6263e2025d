//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

package gradebook

// Store is the set of gradebook operations the interface layers depend on.
// *Gradebook is the only production implementation.
type Store interface {
	AddStudent(name string) error
	AddGrade(student, subject, raw string) (float64, error)
	SubjectAverage(student, subject string) Average
	OverallAverage(student string) Average
	StudentReport(student string) (Report, error)
	AllStudentsSummary() Summary
	Student(name string) (StudentView, bool)
	HasStudent(name string) bool
	Len() int
	Names() []string
}

// StudentView is a read-only snapshot of one student.
type StudentView struct {
	Name     string          `json:"name"`
	Subjects []SubjectGrades `json:"subjects"`
}

// SubjectGrades is one subject's grade sequence in insertion order.
type SubjectGrades struct {
	Subject string    `json:"subject"`
	Grades  []float64 `json:"grades"`
}

// Report is the per-subject breakdown produced by StudentReport.
// NoSubjects is set, and Overall is NoData, when the student has no subjects.
type Report struct {
	Student    string          `json:"student"`
	NoSubjects bool            `json:"no_subjects"`
	Subjects   []SubjectReport `json:"subjects"`
	Overall    Average         `json:"overall_average"`
}

// SubjectReport is one row of a Report.
type SubjectReport struct {
	Subject string    `json:"subject"`
	Grades  []float64 `json:"grades"`
	Average Average   `json:"average"`
}

// Summary lists every student's overall average.
type Summary struct {
	Empty   bool           `json:"empty"`
	Entries []SummaryEntry `json:"students"`
}

// SummaryEntry is one row of a Summary.
type SummaryEntry struct {
	Student string  `json:"student"`
	Overall Average `json:"overall_average"`
}
