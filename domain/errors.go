package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// ValidationError reports structural problems with a payload, keyed by field.
// It is always produced before any store interaction happens.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
