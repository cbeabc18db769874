package model

import (
	"errors"
	"fmt"
)

var (
	ErrStepNotFound   = errors.New("step not found")
	ErrAnswerRequired = errors.New("step requires an answer")
)

// InvalidChoiceError means the caller offered a value the active step does not
// declare, or answered a step that is not active. It points at a UI/engine
// desync, never at user input.
type InvalidChoiceError struct {
	StepId string
	Value  string
	Reason string
}

func (e InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q for step %s: %s", e.Value, e.StepId, e.Reason)
}

// MissingPriceEntryError is a gap in the price table. Pricing turns it into a
// zero priced warning line.
type MissingPriceEntryError struct {
	Key string
}

func (e MissingPriceEntryError) Error() string {
	return fmt.Sprintf("no price entry for %s", e.Key)
}

// InvalidSelectionError is a selection value the catalog cannot represent at all.
type InvalidSelectionError struct {
	Field string
	Value string
}

func (e InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection %s=%q", e.Field, e.Value)
}
