package model

import (
	"errors"
	"fmt"
	"time"
)

// Base errors for errors.Is checks.
var (
	ErrInvalidDate      = errors.New("invalid course dates")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCourseNotFound   = errors.New("course not found")
	ErrUnknownKind      = errors.New("unknown course type")
	ErrInvalidRecord    = errors.New("invalid course record")
)

// InvalidDateError is returned by course constructors when the end date
// precedes the start date.
type InvalidDateError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateError) Error() string {
	return "Дата окончания курса не может быть раньше даты начала."
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// PermissionDeniedError is returned when a role check fails.
type PermissionDeniedError struct {
	Required string
	Actual   string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("Недостаточно прав: требуется роль '%s'.", e.Required)
}

// Is reports whether target is ErrPermissionDenied.
func (e *PermissionDeniedError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// CourseNotFoundError is reserved for a lookup by title. Nothing returns it yet.
type CourseNotFoundError struct {
	Title string
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("Курс %q не найден.", e.Title)
}

// Is reports whether target is ErrCourseNotFound.
func (e *CourseNotFoundError) Is(target error) bool {
	return target == ErrCourseNotFound
}
