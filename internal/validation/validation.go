// Package validation checks event and request invariants without touching storage.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// StartBeforeEndMessage is reported when an event does not start before it ends.
const StartBeforeEndMessage = "Start date and time must be before end date and time."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("cents", validateCents); err != nil {
		panic(err)
	}
	return v
}

// validateCents rejects amounts with more than two decimal places.
func validateCents(fl validator.FieldLevel) bool {
	cents := fl.Field().Float() * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// validateNotBlank rejects empty and whitespace-only strings.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Event returns every violated event rule. A nil result means the event is valid.
func Event(e models.Event) apperrors.ValidationErrors {
	errs := Struct(e)

	if !e.StartDateTime.Before(e.EndDateTime) {
		errs = append(errs, apperrors.ValidationError{
			Fields:  []string{"startDateTime", "endDateTime"},
			Message: StartBeforeEndMessage,
		})
	}

	return errs
}

// Struct runs the declarative `validate` tags of v and collects all failures.
func Struct(v any) apperrors.ValidationErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ValidationErrors{{Message: err.Error()}}
	}

	errs := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, apperrors.ValidationError{
			Fields:  []string{fe.Field()},
			Message: formatFieldError(fe),
		})
	}
	return errs
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a well-formed URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be a positive value", field)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "cents":
		return fmt.Sprintf("%s must have at most 2 decimal places", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
