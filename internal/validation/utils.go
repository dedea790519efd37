package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/products/internal/errs"
)

// Validatable is implemented by input types that know how to validate
// themselves, usually by calling Struct on their own tags.
type Validatable interface {
	Validate() error
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their `flag` tag so messages name the CLI flag.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Struct validates the tags of s.
func Struct(s any) error {
	return validate.Struct(s)
}

// Validate runs payload.Validate and converts failures into an
// argument error listing the offending fields.
func Validate(payload Validatable) error {
	err := payload.Validate()
	if err == nil {
		return nil
	}

	msg, fieldErrors := extractValidationError(err)
	if fieldErrors == nil {
		return errs.NewArgumentError(msg, nil, err)
	}
	return errs.NewArgumentError(msg, fieldErrors, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	// Anything that is not a tag failure is reported as-is.
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, e := range validationErrors {
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if e.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", e.Param())
			}

		case "max":
			if e.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", e.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", e.Param())

		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s:%s", e.Tag(), e.Param())
			} else {
				msg = e.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
