package model

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a validation failure scoped to one input field.
type FieldError struct {
	Name    string `json:"name"`
	Message string `json:"error"`
}

// FieldErrors collects every field error found in one validation pass.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Name+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateNewHours, NewHours{})
	return v
}

func validateNewHours(sl validator.StructLevel) {
	n := sl.Current().Interface().(NewHours)
	if !n.Date.IsZero() && !n.Date.IsValid() {
		sl.ReportError(n.Date, "date", "Date", "calendar_date", "")
	}
}

// Validate checks n and returns FieldErrors when any field is invalid, nil otherwise.
func (n NewHours) Validate() error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Name: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "ne":
		return "can not be zero"
	case "gte":
		return "can not be negative"
	case "lte":
		return "can not be larger than " + fe.Param()
	case "required":
		return "is required"
	case "calendar_date":
		return "is not a valid date"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
