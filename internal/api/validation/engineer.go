package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	nameMinLen = 2
	nameMaxLen = 10
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EngineerRequest mirrors the fields needed for create/update validation.
type EngineerRequest struct {
	Name string
}

// ValidateEngineerRequest validates the fields of a create or update
// engineer request. Returns a slice of field errors; empty means valid.
// Length is counted in runes. techStack carries no constraints.
func ValidateEngineerRequest(req EngineerRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be blank"})
	} else if n := utf8.RuneCountInString(req.Name); n < nameMinLen || n > nameMaxLen {
		errs = append(errs, FieldError{Field: "name", Message: "name must be between 2 and 10 characters"})
	}

	return errs
}
