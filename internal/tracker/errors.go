package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrNoUser            = errors.New("no user is logged in")
	ErrTaskNotFound      = errors.New("task not found")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMemberExists      = errors.New("member already in project")
	ErrNotifNotFound     = errors.New("notification not found")
)

// ValidationError reports a rejected input. The operation that returns it has
// left all state unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
