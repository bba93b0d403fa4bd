package model

import (
	"fmt"
	"strings"
)

// Record is the snapshot representation of a course.
//
// Variant data (languages, tools, field) is not part of a record, so a
// course rebuilt from a record has an empty variant.
type Record struct {
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Instructor string   `json:"instructor"`
	Students   []string `json:"students"`
	Topics     []string `json:"topics"`
}

// ToRecord converts the course to its snapshot representation.
func (c *Course) ToRecord() Record {
	return Record{
		Type:       c.Kind().TypeName(),
		Title:      c.title,
		StartDate:  c.startDate.Format(DateLayout),
		EndDate:    c.endDate.Format(DateLayout),
		Instructor: c.instructor,
		Students:   nonNil(c.students),
		Topics:     nonNil(c.topics),
	}
}

// FromRecord rebuilds a course from a snapshot record using the factory
// registered for the record type.
func FromRecord(reg *Registry, rec Record) (*Course, error) {
	f, ok := reg.Lookup(rec.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Type)
	}

	start, err := ParseDate(strings.TrimSpace(rec.StartDate))
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q: %v", ErrInvalidRecord, rec.StartDate, err)
	}
	end, err := ParseDate(strings.TrimSpace(rec.EndDate))
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q: %v", ErrInvalidRecord, rec.EndDate, err)
	}

	return f(Info{
		Title:      rec.Title,
		StartDate:  start,
		EndDate:    end,
		Instructor: rec.Instructor,
		Students:   rec.Students,
		Topics:     rec.Topics,
	}, "")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
