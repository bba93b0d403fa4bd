package platform

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	ioutils "github.com/handiism/edupro/internal/io"
	"github.com/handiism/edupro/internal/logging"
	"github.com/handiism/edupro/internal/model"
)

// DefaultTopCount is the number of courses TopCourses callers usually ask for.
const DefaultTopCount = 3

// EventLevel indicates the severity/type of an event message.
type EventLevel int

const (
	LevelInfo EventLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event reports something the platform did.
type Event struct {
	Message string
	Level   EventLevel
}

// Option configures a Platform.
type Option func(*Platform)

// WithEvents sets the callback that receives platform events.
func WithEvents(fn func(Event)) Option {
	return func(p *Platform) { p.onEvent = fn }
}

// WithLogger sets the logger for platform and course actions.
func WithLogger(l *slog.Logger) Option {
	return func(p *Platform) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithBackup makes SaveToFile copy an existing snapshot to <path>.bak
// before replacing it.
func WithBackup(enabled bool) Option {
	return func(p *Platform) { p.backup = enabled }
}

// Platform owns the course catalog.
//
// Courses are kept in insertion order. The platform is the only owner of
// the courses it holds: a removed course is gone. Platform is not safe for
// concurrent use.
type Platform struct {
	name    string
	address model.Address
	courses []*model.Course

	logger  *slog.Logger
	backup  bool
	onEvent func(Event)
}

// New creates an empty platform.
func New(name string, address model.Address, opts ...Option) *Platform {
	p := &Platform{
		name:    name,
		address: address,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the platform name.
func (p *Platform) Name() string { return p.name }

// Address returns the platform address.
func (p *Platform) Address() model.Address { return p.address }

// AddCourse appends a course. Titles are not checked for duplicates.
//
// The course gets the platform logger for its actions and notifications,
// then its students are told about the new course.
func (p *Platform) AddCourse(c *model.Course) {
	c.WithLogger(logging.CourseLogger{Logger: p.logger}).
		WithNotifier(logging.StudentNotifier{Logger: p.logger})

	p.courses = append(p.courses, c)

	c.LogAction("Курс добавлен на платформу " + p.name)
	c.NotifyStudents(fmt.Sprintf("вы записаны на курс %q", c.Title()))
}

// RemoveCourse removes every course titled exactly title and returns how
// many were removed. Removing a title that is not present does nothing.
func (p *Platform) RemoveCourse(title string) int {
	before := len(p.courses)
	p.courses = slices.DeleteFunc(p.courses, func(c *model.Course) bool {
		if c.Title() != title {
			return false
		}
		c.LogAction("Курс удалён с платформы " + p.name)
		return true
	})
	return before - len(p.courses)
}

// Courses returns the courses in insertion order. The returned slice is a
// copy; the courses themselves are shared.
func (p *Platform) Courses() []*model.Course {
	return slices.Clone(p.courses)
}

// Len returns the number of courses.
func (p *Platform) Len() int { return len(p.courses) }

// TopCourses returns the n courses with the most students, largest first.
// Courses with the same number of students keep their insertion order.
// If fewer than n courses exist all of them are returned.
func (p *Platform) TopCourses(n int) []*model.Course {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(p.courses)
	slices.SortStableFunc(sorted, func(a, b *model.Course) int {
		return model.Compare(b, a)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Snapshot returns the records of all courses in insertion order.
func (p *Platform) Snapshot() []model.Record {
	records := make([]model.Record, 0, len(p.courses))
	for _, c := range p.courses {
		records = append(records, c.ToRecord())
	}
	return records
}

// SaveToFile replaces path with a JSON snapshot of every course.
//
// Success is reported through the event callback.
func (p *Platform) SaveToFile(ctx context.Context, path string) error {
	if p.backup && ioutils.FileExists(path) {
		if err := ioutils.CopyFile(ctx, path, path+".bak"); err != nil {
			p.event(Event{Message: fmt.Sprintf("Не удалось создать резервную копию %s: %v", path, err), Level: LevelWarning})
		} else {
			p.event(Event{Message: fmt.Sprintf("Резервная копия: %s.bak", path), Level: LevelVerbose})
		}
	}

	if err := ioutils.WriteJSON(ctx, path, p.Snapshot()); err != nil {
		p.logger.Error("save snapshot", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("save snapshot: %w", err)
	}

	p.logger.Info("snapshot saved", slog.String("path", path), slog.Int("courses", len(p.courses)))
	p.event(Event{Message: fmt.Sprintf("Курсы сохранены в %s", path), Level: LevelSuccess})
	return nil
}

// LoadFromFile appends the courses stored in a snapshot and returns how
// many were added. Courses are rebuilt through reg; variant details are
// not part of a snapshot and come back empty. Nothing is added if any
// record is invalid.
func (p *Platform) LoadFromFile(ctx context.Context, path string, reg *model.Registry) (int, error) {
	var records []model.Record
	if err := ioutils.ReadJSON(ctx, path, &records); err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}

	courses := make([]*model.Course, 0, len(records))
	for i, rec := range records {
		c, err := model.FromRecord(reg, rec)
		if err != nil {
			return 0, fmt.Errorf("load snapshot: record %d: %w", i, err)
		}
		courses = append(courses, c)
	}

	for _, c := range courses {
		c.WithLogger(logging.CourseLogger{Logger: p.logger}).
			WithNotifier(logging.StudentNotifier{Logger: p.logger})
		p.courses = append(p.courses, c)
	}

	p.event(Event{Message: fmt.Sprintf("Загружено курсов: %d из %s", len(courses), path), Level: LevelInfo})
	return len(courses), nil
}

func (p *Platform) event(e Event) {
	if p.onEvent != nil {
		p.onEvent(e)
	}
}
