package badge

import (
	"errors"
	"fmt"

	"ghactivity/internal/domain/activity"
)

var ErrClassification = errors.New("activity state cannot be classified")

// ClassificationError reports an activity whose kind or state is outside the
// known domain, or whose state fields are missing.
type ClassificationError struct {
	Kind   activity.Kind
	State  string
	Reason string
	Detail string
}

func (e *ClassificationError) Error() string {
	msg := fmt.Sprintf("%s: kind=%q state=%q", ErrClassification, e.Kind, e.State)
	if e.Reason != "" {
		msg += fmt.Sprintf(" reason=%q", e.Reason)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}
