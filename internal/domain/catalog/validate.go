package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// check validates in and turns the first violated constraint into a
// validation error that names it.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return httperr.ErrValidation("Invalid input")
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return httperr.ErrValidation("Missing required field: " + field)
	case "gt":
		return httperr.ErrValidation(capitalize(field) + " must be a positive number")
	case "gte":
		return httperr.ErrValidation(capitalize(field) + " must be a non-negative number")
	case "min", "max":
		if fe.Kind() != reflect.String {
			return httperr.ErrValidation(fmt.Sprintf("%s must be a number between 1 and 5", capitalize(field)))
		}
		if fe.Tag() == "min" {
			return httperr.ErrValidation(capitalize(field) + " must not be empty")
		}
		return httperr.ErrValidation(fmt.Sprintf("%s must be at most %s characters", capitalize(field), fe.Param()))
	case "oneof":
		return httperr.ErrValidation(fmt.Sprintf("%s must be one of: %s", capitalize(field), strings.ReplaceAll(fe.Param(), " ", ", ")))
	default:
		return httperr.ErrValidation(fmt.Sprintf("%s is invalid", capitalize(field)))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
