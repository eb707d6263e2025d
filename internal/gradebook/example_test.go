package gradebook

import "fmt"

// ExampleGradebook_StudentReport walks through the reference session.
func ExampleGradebook_StudentReport() {
	g := New()
	_ = g.AddStudent("Alice")
	_, _ = g.AddGrade("Alice", "Math", "90")
	_, _ = g.AddGrade("Alice", "Math", "85")
	_, _ = g.AddGrade("Alice", "Science", "92")

	report, err := g.StudentReport("Alice")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range report.Subjects {
		fmt.Printf("%s %v %s\n", s.Subject, s.Grades, s.Average)
	}
	fmt.Println("Overall", report.Overall)
	// Output:
	// Math [90 85] 87.50
	// Science [92] 92.00
	// Overall 89.00
}

// ExampleGradebook_OverallAverage shows the difference between an unknown
// student and a student without grades.
func ExampleGradebook_OverallAverage() {
	g := New()
	_ = g.AddStudent("Bob")

	fmt.Println(g.OverallAverage("Bob"))
	fmt.Println(g.OverallAverage("Zoe"))
	fmt.Println(g.SubjectAverage("Bob", "Math"))
	// Output:
	// 0.00
	// N/A
	// N/A
}

// ExampleParseGrade shows the discriminated parse results.
func ExampleParseGrade() {
	for _, raw := range []string{"92.5", "abc", "101"} {
		v, err := ParseGrade(raw)
		fmt.Println(v, err)
	}
	// Output:
	// 92.5 <nil>
	// 0 invalid grade "abc": please enter a numeric value
	// 0 grade 101 must be between 0 and 100
}
