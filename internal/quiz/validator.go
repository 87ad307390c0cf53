package quiz

import (
	"fmt"
	"strings"
)

// Validator checks a composed question before it is returned.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural".
	Name() string

	// Validate returns nil if q passes, or a ValidationError otherwise.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that a question has a prompt, at least two
// options and an in-range correct index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(q.Options) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need at least 2 options, got %d", len(q.Options)),
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct index %d out of range [0,%d)", q.Correct, len(q.Options)),
		}
	}
	return nil
}

// DistinctOptionsValidator rejects blank options and options that repeat
// another option, ignoring case.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q Question) *ValidationError {
	seen := make(map[string]int, len(q.Options))
	for i, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %d is empty", i)}
		}
		if j, dup := seen[key]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d duplicates option %d", i, j),
			}
		}
		seen[key] = i
	}
	return nil
}

// DefaultValidators returns the validator chain applied to every question.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&DistinctOptionsValidator{},
	}
}

// Check runs validators in order and returns the first failure.
func Check(q Question, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
