// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var urlSegmentPattern = regexp.MustCompile(`^[^/\\]*\S[^/\\]*$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("url_segment", validateURLSegment)
}

// RomPathParams are the path parameters of /api/roms/:console/:slug.
// Console is free text: the web client links by lower-cased console
// name, e.g. "arcade (mame)".
type RomPathParams struct {
	Console string `uri:"console" validate:"required,max=64,url_segment"`
	Slug    string `uri:"slug" validate:"required,max=255,url_segment"`
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateURLSegment accepts a single non-blank path segment that is not
// a dot segment.
func validateURLSegment(fl validator.FieldLevel) bool {
	segment := fl.Field().String()
	if segment == "." || segment == ".." {
		return false
	}
	return urlSegmentPattern.MatchString(segment)
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
				Field:   strings.ToLower(e.Field()),
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
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "url_segment":
		return e.Field() + " must be a single path segment"
	default:
		return e.Field() + " is invalid"
	}
}
