package gradebook

import (
	apperrors "github.com/agbru/gradebook/internal/errors"
)

// demoGrades mirrors the sample session used in the docs: Alice ends with
// Math 87.50, Science 92.00, overall 89.00.
var demoGrades = []struct {
	student, subject, grade string
}{
	{"Alice", "Math", "90"},
	{"Alice", "Math", "85"},
	{"Alice", "Science", "92"},
	{"Bob", "Math", "78"},
}

// LoadDemo adds the sample students and grades to s. Students that already
// exist are kept and still receive the sample grades.
func LoadDemo(s Store) error {
	for _, g := range demoGrades {
		if err := s.AddStudent(g.student); err != nil && !apperrors.IsSoft(err) {
			return apperrors.WrapError(err, "demo student %s", g.student)
		}
		if _, err := s.AddGrade(g.student, g.subject, g.grade); err != nil {
			return apperrors.WrapError(err, "demo grade %s/%s", g.student, g.subject)
		}
	}
	return nil
}
