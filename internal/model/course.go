package model

import (
	"fmt"
	"slices"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used in snapshots and prompts.
const DateLayout = time.DateOnly

// Behavior is what every course can do regardless of its variant.
type Behavior interface {
	Teach() string
	AssessProgress() string
	CompletionRate() int
}

// ActionLogger records actions performed on a course.
type ActionLogger interface {
	LogAction(course *Course, message string)
}

// Notifier delivers a message to a single student.
type Notifier interface {
	Notify(student, message string)
}

// Info holds the fields shared by all course variants.
type Info struct {
	Title      string
	StartDate  time.Time
	EndDate    time.Time
	Instructor string
	Students   []string
	Topics     []string
}

// Course is a course offered on the platform.
//
// The common data lives on Course itself; the type-specific data and
// behavior live in its Variant. A Course is created only through the
// constructors, which reject an end date that precedes the start date.
//
// Example:
//
//	course, err := NewScienceCourse(info, "Физика")
//	course.Teach()          // "Провожу лабораторные работы."
//	course.CompletionRate() // 3 * (topics + students)
type Course struct {
	title      string
	startDate  time.Time
	endDate    time.Time
	instructor string
	students   []string
	topics     []string

	variant  Variant
	logger   ActionLogger
	notifier Notifier
}

var _ Behavior = (*Course)(nil)

// NewProgrammingCourse creates a programming course taught in the given languages.
func NewProgrammingCourse(info Info, languages []string) (*Course, error) {
	return newCourse(info, Programming{Languages: slices.Clone(languages)})
}

// NewDesignCourse creates a design course that uses the given tools.
func NewDesignCourse(info Info, tools []string) (*Course, error) {
	return newCourse(info, Design{Tools: slices.Clone(tools)})
}

// NewScienceCourse creates a science course in the given field.
func NewScienceCourse(info Info, field string) (*Course, error) {
	return newCourse(info, Science{Field: field})
}

func newCourse(info Info, v Variant) (*Course, error) {
	start := dateOnly(info.StartDate)
	end := dateOnly(info.EndDate)
	if end.Before(start) {
		return nil, &InvalidDateError{Start: start, End: end}
	}

	return &Course{
		title:      info.Title,
		startDate:  start,
		endDate:    end,
		instructor: info.Instructor,
		students:   slices.Clone(info.Students),
		topics:     slices.Clone(info.Topics),
		variant:    v,
		logger:     nopLogger{},
		notifier:   nopNotifier{},
	}, nil
}

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// SetTitle renames the course.
func (c *Course) SetTitle(title string) { c.title = title }

// StartDate returns the first day of the course.
func (c *Course) StartDate() time.Time { return c.startDate }

// EndDate returns the last day of the course.
func (c *Course) EndDate() time.Time { return c.endDate }

// Instructor returns the name of the course instructor.
func (c *Course) Instructor() string { return c.instructor }

// Students returns the enrolled students in enrollment order.
func (c *Course) Students() []string { return c.students }

// Topics returns the course topics in order.
func (c *Course) Topics() []string { return c.topics }

// Variant returns the type-specific part of the course.
func (c *Course) Variant() Variant { return c.variant }

// Kind returns the course variant kind.
func (c *Course) Kind() Kind { return c.variant.Kind() }

// Duration returns the number of days between the start and end dates.
func (c *Course) Duration() int {
	return int((c.endDate.Unix() - c.startDate.Unix()) / 86400)
}

// Teach describes how the course is taught.
func (c *Course) Teach() string { return c.variant.teach() }

// AssessProgress describes how student progress is assessed.
func (c *Course) AssessProgress() string { return c.variant.assess() }

// CompletionRate returns the variant's completion score. The score is not
// bounded to 0..100.
func (c *Course) CompletionRate() int { return c.variant.completionRate(c) }

// WithLogger attaches the logger used by LogAction and returns the course.
func (c *Course) WithLogger(l ActionLogger) *Course {
	if l == nil {
		l = nopLogger{}
	}
	c.logger = l
	return c
}

// WithNotifier attaches the notifier used by NotifyStudents and returns the course.
func (c *Course) WithNotifier(n Notifier) *Course {
	if n == nil {
		n = nopNotifier{}
	}
	c.notifier = n
	return c
}

// LogAction records an action performed on the course.
func (c *Course) LogAction(message string) {
	c.logger.LogAction(c, message)
}

// NotifyStudents sends message to every enrolled student in enrollment order.
func (c *Course) NotifyStudents(message string) {
	for _, student := range c.students {
		c.notifier.Notify(student, message)
	}
}

// Summary renders the course without variant details.
func (c *Course) Summary() string {
	return fmt.Sprintf("Курс: %s, Преподаватель: %s", c.title, c.instructor)
}

// String renders the course with its variant tag and details, for example
// "[Дизайн] Основы UI (Figma, Sketch)".
func (c *Course) String() string {
	return fmt.Sprintf("[%s] %s (%s)", c.Kind().Label(), c.title, c.variant.details())
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func dateOnly(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

type nopLogger struct{}

func (nopLogger) LogAction(*Course, string) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}
