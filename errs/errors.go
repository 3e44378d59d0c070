// Package errs classifies errors reported by the ScreenScraper API and
// carries request field validation failures.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is an error reported by the ScreenScraper API, either as a
// non-2xx transport response or as an envelope with success=false.
// Message holds the raw upstream text, never modified.
type APIError struct {
	Message    string   `json:"message"`
	StatusCode int      `json:"code"`
	Category   Category `json:"category"`
	text       string
}

// New classifies the raw upstream message using the translation table.
func New(message string, statusCode int) *APIError {
	entry, ok := lookup(message)
	if !ok {
		return &APIError{
			Message:    message,
			StatusCode: statusCode,
			Category:   CategoryUnknown,
			text:       fmt.Sprintf("an error has occurred on the ScreenScraper API with status code %d: %s", statusCode, message),
		}
	}

	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		Category:   entry.category,
		text:       entry.message,
	}
}

// Error implements the error interface and returns the translated message.
func (e *APIError) Error() string {
	return e.text
}

// Unwrap exposes the category sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	return e.Category.sentinel()
}

// IsKnown reports whether the upstream message matched the table.
func (e *APIError) IsKnown() bool {
	return e.Category != CategoryUnknown
}

// GetAPIError returns the *APIError in err's chain, if any.
func GetAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if !errors.As(err, &ae) {
		return nil, false
	}

	return ae, true
}

// /////////////////////////////////////////////////////////////////////////////////////////////

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// NewFieldsError creates a fields error.
func NewFieldsError(field string, err error) error {
	return FieldErrors{
		{
			Field: field,
			Err:   err.Error(),
		},
	}
}

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	d, err := json.Marshal(fe)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// Fields returns the fields that failed validation
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string)
	for _, fld := range fe {
		m[fld.Field] = fld.Err
	}
	return m
}

// IsFieldErrors checks if an error of type FieldErrors exists.
func IsFieldErrors(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}

// GetFieldErrors returns a copy of the FieldErrors pointer.
func GetFieldErrors(err error) FieldErrors {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		return nil
	}
	return fe
}
