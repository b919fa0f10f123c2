package service

import "errors"

// Sentinel errors classifying expected failure modes. Handlers map these to
// HTTP statuses; anything that does not match is treated as a system error.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// serviceError carries a human-readable reason while staying matchable
// with errors.Is against one of the sentinels above.
type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }

func (e *serviceError) Unwrap() error { return e.kind }

func validationError(msg string) error {
	return &serviceError{kind: ErrValidation, msg: msg}
}

func notFoundError(msg string) error {
	return &serviceError{kind: ErrNotFound, msg: msg}
}

func conflictError(msg string) error {
	return &serviceError{kind: ErrConflict, msg: msg}
}
