package workorder

import (
	"fmt"

	"yard/internal/pkg/errs"
)

// Priority orders work orders for dispatch. Higher values dispatch first.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Low priority work is handled when nothing else is queued.
	Low

	// Medium is the default priority for routine placements.
	Medium

	// High priority work jumps ahead of routine placements.
	High

	// Urgent work is dispatched before everything else.
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		Low:             "Low",
		Medium:          "Medium",
		High:            "High",
		Urgent:          "Urgent",
	}
}

// Validate checks if the Priority value is valid.
// Valid priorities are Low, Medium, High, and Urgent.
func (p Priority) Validate() error {
	if p < Low || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
// This method implements the fmt.Stringer interface.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PriorityFromString parses a priority name, accepting the values produced by String.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s && priority != PriorityUnknown {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid", fmt.Errorf("%q is not a valid priority", s))
}
