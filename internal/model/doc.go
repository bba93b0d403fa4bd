// Package model defines the course catalog entities used throughout
// the edupro application.
//
// # Course
//
// Course holds the data every course shares and one Variant that carries
// the type-specific data and behavior:
//
//	info := model.Info{
//	    Title:      "Go для начинающих",
//	    StartDate:  model.Date(2024, time.September, 1),
//	    EndDate:    model.Date(2024, time.December, 20),
//	    Instructor: "Иванов",
//	    Students:   []string{"anna", "boris"},
//	    Topics:     []string{"syntax", "goroutines", "testing"},
//	}
//	course, err := model.NewProgrammingCourse(info, []string{"Go"})
//	if err != nil {
//	    // errors.Is(err, model.ErrInvalidDate) when the course ends before it starts
//	}
//	fmt.Println(course)                  // [Программирование] Go для начинающих (Go)
//	fmt.Println(course.CompletionRate()) // 30
//
// # Variants
//
// The variant set is closed: Programming, Design and Science. Completion
// rates are raw scores, not percentages:
//   - Programming: 10 per topic
//   - Design: 5 per student
//   - Science: 3 per topic and per student
//
// # Ordering
//
// Courses are compared only by their number of students, see Compare.
// Two different courses with the same number of students are Equal.
//
// # Registry
//
// Registry maps variant type names to factories so callers can build a
// course from a type tag typed by a user or read from a snapshot:
//
//	reg := model.DefaultRegistry()
//	course, err := reg.Build(model.KindDesign, info, "Figma, Sketch")
//
// # Snapshot records
//
// Record is the JSON shape of a course in a saved snapshot.
package model
