package model

import (
	"fmt"
	"strings"
)

// Kind identifies a course variant.
type Kind int

const (
	// KindProgramming is a programming course, taught in one or more languages.
	KindProgramming Kind = iota

	// KindDesign is a design course, taught with a set of tools.
	KindDesign

	// KindScience is a science course within a single field.
	KindScience
)

// Kinds lists every variant in menu order.
var Kinds = []Kind{KindProgramming, KindDesign, KindScience}

// Tag returns the short lowercase tag users type to pick the variant.
//
// Returns:
//   - "programming" for KindProgramming
//   - "design" for KindDesign
//   - "science" for KindScience
func (k Kind) Tag() string {
	switch k {
	case KindProgramming:
		return "programming"
	case KindDesign:
		return "design"
	case KindScience:
		return "science"
	default:
		return "unknown"
	}
}

// TypeName returns the variant name written to the "type" key of a snapshot.
func (k Kind) TypeName() string {
	switch k {
	case KindProgramming:
		return "ProgrammingCourse"
	case KindDesign:
		return "DesignCourse"
	case KindScience:
		return "ScienceCourse"
	default:
		return "Course"
	}
}

// Label returns the prefix used when a course is rendered for people.
func (k Kind) Label() string {
	switch k {
	case KindProgramming:
		return "Программирование"
	case KindDesign:
		return "Дизайн"
	case KindScience:
		return "Наука"
	default:
		return "Курс"
	}
}

// ExtraPrompt is the question asked for the variant-specific field.
func (k Kind) ExtraPrompt() string {
	switch k {
	case KindProgramming:
		return "Языки программирования"
	case KindDesign:
		return "Инструменты"
	case KindScience:
		return "Область науки"
	default:
		return ""
	}
}

func (k Kind) String() string {
	return k.Tag()
}

// ParseKind maps a user supplied tag to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "programming":
		return KindProgramming, nil
	case "design":
		return KindDesign, nil
	case "science":
		return KindScience, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
}
