// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var cellRangePattern = regexp.MustCompile(`^([^!]+!)?[A-Za-z]+[0-9]*:[A-Za-z]+[0-9]*$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("cell_range", validateCellRange)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateCellRange accepts A1 column ranges like "A:F", "A1:D200" or
// "Sheet1!A:D". An empty value passes so the field stays optional.
func validateCellRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || cellRangePattern.MatchString(value)
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Namespace(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "numeric":
		return e.Field() + " must be numeric"
	case "cell_range":
		return e.Field() + " must be an A1 range such as A:F"
	default:
		return e.Field() + " is invalid"
	}
}
