package gradebook

import (
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "github.com/agbru/gradebook/internal/errors"
)

func propertyParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

// TestAddGrade_AppendsAndRecomputesMean_PropertyBased verifies that every valid
// grade grows its sequence by exactly one and that the subject average is the
// true arithmetic mean of everything recorded so far.
func TestAddGrade_AppendsAndRecomputesMean_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("valid grades append and update the mean", prop.ForAll(
		func(grades []float64) bool {
			g := New()
			_ = g.AddStudent("s")
			var sum float64
			for i, v := range grades {
				if _, err := g.AddGrade("s", "subj", strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
					t.Logf("AddGrade(%v): %v", v, err)
					return false
				}
				sum += v
				view, _ := g.Student("s")
				if len(view.Subjects[0].Grades) != i+1 {
					return false
				}
				avg := g.SubjectAverage("s", "subj")
				if !avg.Valid || math.Abs(avg.Value-sum/float64(i+1)) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(20, gen.Float64Range(MinGrade, MaxGrade)),
	))

	properties.TestingRun(t)
}

// TestAddGrade_RejectsOutOfRange_PropertyBased verifies that grades outside
// [0, 100] fail with OutOfRangeError and leave the store untouched.
func TestAddGrade_RejectsOutOfRange_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	outOfRange := gen.OneGenOf(
		gen.Float64Range(-1e6, -1e-6),
		gen.Float64Range(MaxGrade+1e-6, 1e6),
	)

	properties.Property("out-of-range grades are rejected", prop.ForAll(
		func(v float64) bool {
			g := New()
			_ = g.AddStudent("s")
			_, err := g.AddGrade("s", "subj", strconv.FormatFloat(v, 'g', -1, 64))
			if _, ok := err.(apperrors.OutOfRangeError); !ok {
				return false
			}
			view, _ := g.Student("s")
			return len(view.Subjects) == 0
		},
		outOfRange,
	))

	properties.TestingRun(t)
}

// TestAddGrade_RejectsNonNumeric_PropertyBased verifies that alphabetic input
// fails with InvalidFormatError.
func TestAddGrade_RejectsNonNumeric_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("alphabetic grades are rejected", prop.ForAll(
		func(raw string) bool {
			g := New()
			_ = g.AddStudent("s")
			_, err := g.AddGrade("s", "subj", raw)
			_, ok := err.(apperrors.InvalidFormatError)
			return ok && g.SubjectAverage("s", "subj") == NoData
		},
		// "inf", "infinity" and "nan" parse as floats, so letters only
		// from a range that cannot spell them.
		gen.RegexMatch(`[b-e]{1,8}`),
	))

	properties.TestingRun(t)
}

// TestOverallAverage_IsMeanOfAllGrades_PropertyBased verifies that the overall
// average equals the mean of the concatenation of every subject's grades.
func TestOverallAverage_IsMeanOfAllGrades_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("overall average is the mean of all grades", prop.ForAll(
		func(mathGrades, scienceGrades []float64) bool {
			g := New()
			_ = g.AddStudent("s")
			var all []float64
			for _, v := range mathGrades {
				_, _ = g.AddGrade("s", "Math", strconv.FormatFloat(v, 'g', -1, 64))
				all = append(all, v)
			}
			for _, v := range scienceGrades {
				_, _ = g.AddGrade("s", "Science", strconv.FormatFloat(v, 'g', -1, 64))
				all = append(all, v)
			}

			got := g.OverallAverage("s")
			if len(all) == 0 {
				return got == Some(0)
			}
			var sum float64
			for _, v := range all {
				sum += v
			}
			return got.Valid && math.Abs(got.Value-sum/float64(len(all))) < 1e-9
		},
		gen.SliceOfN(10, gen.Float64Range(MinGrade, MaxGrade)),
		gen.SliceOfN(3, gen.Float64Range(MinGrade, MaxGrade)),
	))

	properties.TestingRun(t)
}

// TestAddStudent_Idempotent_PropertyBased verifies that adding the same name
// any number of times keeps exactly one entry.
func TestAddStudent_Idempotent_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("repeated adds keep one student", prop.ForAll(
		func(name string, repeats int) bool {
			g := New()
			for i := 0; i < repeats; i++ {
				err := g.AddStudent(name)
				if i > 0 && !apperrors.IsSoft(err) {
					return false
				}
			}
			return g.Len() == 1
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
