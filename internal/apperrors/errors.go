// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError is a single rule violation, tagged to one or more fields.
type ValidationError struct {
	Fields  []string `json:"fields"`
	Message string   `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ","), e.Message)
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField groups messages by field name.
func (e ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string)
	for _, v := range e {
		for _, f := range v.Fields {
			out[f] = append(out[f], v.Message)
		}
	}
	for f := range out {
		sort.Strings(out[f])
	}
	return out
}

// NotFoundError reports the absence of a requested resource.
type NotFoundError struct {
	Resource string
	ID       int64
}

// Error returns the client-facing message, e.g. "Event not found". The ID is
// kept on the struct for logging.
func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Not found"
	}
	return strings.ToUpper(e.Resource[:1]) + e.Resource[1:] + " not found"
}

// UnauthorizedError reports an ownership or role violation.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// DataError wraps any fault raised while a service performs a data operation.
type DataError struct {
	Op  string // e.g. "retrieving all events"
	Err error
}

func (e *DataError) Error() string {
	if e.Err == nil {
		return "an error occurred while " + e.Op
	}
	return fmt.Sprintf("an error occurred while %s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError wraps err as a failure of op.
func NewDataError(op string, err error) error {
	return &DataError{Op: op, Err: err}
}
