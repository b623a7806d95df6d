package steps

import (
	"errors"
	"fmt"
)

// MissingArgumentError indicates that a step name was required but not given.
type MissingArgumentError struct {
	Arg string // Name of the missing argument (e.g., "name")
}

func (e *MissingArgumentError) Error() string {
	if e.Arg != "" && e.Arg != "name" {
		return fmt.Sprintf("steps: no %s provided", e.Arg)
	}
	return "steps: no step name provided"
}

// InvalidStepError indicates that a step name is not present in the registry.
type InvalidStepError struct {
	Name       string // The offending step name
	Suggestion string // Closest registered name, if any
}

func (e *InvalidStepError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("steps: step name %q is invalid; did you mean %q?", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("steps: step name %q is invalid", e.Name)
}

// DuplicateStepError indicates that a step name was registered twice.
type DuplicateStepError struct {
	Name string
}

func (e *DuplicateStepError) Error() string {
	return fmt.Sprintf("steps: step name %q is already registered", e.Name)
}

// MissingConfigurationError indicates that a Manager cannot be constructed
// because required setup was not supplied, such as any way to resolve the
// initial step.
type MissingConfigurationError struct {
	Field string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("steps: missing configuration: %s", e.Field)
}

// IsMissingArgument checks if an error is a MissingArgumentError.
func IsMissingArgument(err error) bool {
	var target *MissingArgumentError
	return errors.As(err, &target)
}

// IsInvalidStep checks if an error is an InvalidStepError.
func IsInvalidStep(err error) bool {
	var target *InvalidStepError
	return errors.As(err, &target)
}

// IsDuplicateStep checks if an error is a DuplicateStepError.
func IsDuplicateStep(err error) bool {
	var target *DuplicateStepError
	return errors.As(err, &target)
}

// IsMissingConfiguration checks if an error is a MissingConfigurationError.
func IsMissingConfiguration(err error) bool {
	var target *MissingConfigurationError
	return errors.As(err, &target)
}
