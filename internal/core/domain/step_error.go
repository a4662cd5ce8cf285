package domain

import "fmt"

// StepError is the error of a task whose step failed.
//
// errors.Is matches Kind, ErrPartialFailure when earlier steps were applied,
// and anything in the Err chain.
type StepError struct {
	Task string
	// Step is the label of the failing step.
	Step string
	// Applied counts the steps of the task that succeeded before the failure.
	Applied int
	Kind    error
	Err     error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("task %s: %s", e.Task, e.Step)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Applied > 0 {
		msg += fmt.Sprintf(" (after %d applied step(s))", e.Applied)
	}
	return msg
}

// Unwrap exposes the kind, the partial marker and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	errs := make([]error, 0, 3)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Applied > 0 {
		errs = append(errs, ErrPartialFailure)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Partial reports whether the task had applied steps before failing.
func (e *StepError) Partial() bool {
	return e.Applied > 0
}
