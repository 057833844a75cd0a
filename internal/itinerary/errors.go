package itinerary

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// InvalidElementRequestError: the request failed a structural precondition
// (declared type, missing order). Nothing was written.
type InvalidElementRequestError struct {
	Field  string
	Reason string
}

func (e InvalidElementRequestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid element request: %s: %s", e.Field, e.Reason)
	}
	return "invalid element request: " + e.Reason
}

// ElementDoesNotExistError covers missing elements, tenancy misses and
// accommodations whose event pair is not exactly two rows.
type ElementDoesNotExistError struct {
	ID     uuid.UUID
	Reason string
	Err    error
}

func (e ElementDoesNotExistError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("element %s does not exist: %s", e.ID, e.Reason)
	}
	return fmt.Sprintf("element %s does not exist", e.ID)
}

func (e ElementDoesNotExistError) Unwrap() error { return e.Err }

// NotFoundError is the trip/section/option counterpart of ElementDoesNotExistError.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
	Err      error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// DbFailureError wraps a failure reported by the backing store.
type DbFailureError struct {
	Op  string
	Err error
}

func (e DbFailureError) Error() string {
	if e.Err == nil {
		return "db failure: " + e.Op
	}
	return fmt.Sprintf("db failure: %s: %v", e.Op, e.Err)
}

func (e DbFailureError) Unwrap() error { return e.Err }

func InvalidRequest(field, reason string) error {
	return InvalidElementRequestError{Field: field, Reason: reason}
}

func ElementDoesNotExist(id uuid.UUID, reason string) error {
	return ElementDoesNotExistError{ID: id, Reason: reason}
}

func DbFailure(op string, err error) error {
	return DbFailureError{Op: op, Err: err}
}

func IsInvalidElementRequest(err error) bool {
	var target InvalidElementRequestError
	return errors.As(err, &target)
}

func IsElementDoesNotExist(err error) bool {
	var target ElementDoesNotExistError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target) || IsElementDoesNotExist(err)
}

func IsDbFailure(err error) bool {
	var target DbFailureError
	return errors.As(err, &target)
}
