// Package platform provides the Platform aggregate that owns the course
// catalog.
//
// # Basic Usage
//
//	p := platform.New("EduPro", address, platform.WithEvents(func(e platform.Event) {
//	    fmt.Println(e.Message)
//	}))
//
//	p.AddCourse(course)
//	top := p.TopCourses(platform.DefaultTopCount)
//	p.RemoveCourse("Old title")
//
//	if err := p.SaveToFile(ctx, "courses.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Snapshots
//
// SaveToFile writes the whole catalog as a JSON array of model.Record,
// replacing the previous file. LoadFromFile reads such a file back.
//
// # Events
//
// Outcomes meant for the user are reported via a callback that receives
// Event values:
//
//	type Event struct {
//	    Message string
//	    Level   EventLevel // Info, Verbose, Warning, Error, Success
//	}
package platform
