package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataError_UnwrapsCause(t *testing.T) {
	cause := &UnauthorizedError{Message: "You are not authorized to update this event."}
	err := NewDataError("updating the event", cause)

	var unauthorized *UnauthorizedError
	assert.True(t, errors.As(err, &unauthorized))
	assert.Equal(t, cause.Message, unauthorized.Message)
	assert.Contains(t, err.Error(), "updating the event")

	wrapped := fmt.Errorf("handler: %w", err)
	var dataErr *DataError
	assert.True(t, errors.As(wrapped, &dataErr))
	assert.Equal(t, "updating the event", dataErr.Op)
}

func TestDataError_NilCause(t *testing.T) {
	err := &DataError{Op: "searching events"}
	assert.Equal(t, "an error occurred while searching events", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewDataError("retrieving the event", &NotFoundError{Resource: "event", ID: 7})

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(7), nf.ID)
	assert.Equal(t, "Event not found", nf.Error())
	assert.Equal(t, "Not found", (&NotFoundError{}).Error())
}

func TestValidationErrors_ByField(t *testing.T) {
	errs := ValidationErrors{
		{Fields: []string{"startDateTime", "endDateTime"}, Message: "Start date and time must be before end date and time."},
		{Fields: []string{"title"}, Message: "title is required"},
	}

	byField := errs.ByField()
	assert.Len(t, byField, 3)
	assert.Equal(t, []string{"Start date and time must be before end date and time."}, byField["endDateTime"])
	assert.Equal(t, []string{"title is required"}, byField["title"])
	assert.Contains(t, errs.Error(), "validation failed")
}
