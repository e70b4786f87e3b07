package services

import "errors"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrMissingTaskID = errors.New("task id is required")
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("status must be one of: pending, in progress, completed")
)

// InfrastructureError wraps a failure of the document store.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return e.Err.Error()
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}

// IsValidationError reports errors caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrMissingTaskID) ||
		errors.Is(err, ErrInvalidStatus)
}
