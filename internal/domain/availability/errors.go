package availability

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("schedule not found")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrDuplicateDate     = errors.New("override date already taken")
	ErrDefaultSchedule   = errors.New("cannot delete default schedule")
	ErrScheduleInUse     = errors.New("schedule in use")
)

// FieldErrors maps a field path (e.g. "name", "schedule.1.slots.0") to a
// human-readable message. Validation failures travel as values, never panics.
type FieldErrors map[string]string

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}
