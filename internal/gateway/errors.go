package gateway

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmployeeNotFound is returned when a code-keyed lookup finds no employee
// in the freshly fetched directory.
var ErrEmployeeNotFound = errors.New("employee not found")

// APIError is a non-validation failure reported by the gateway envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("gateway error (status %d)", e.StatusCode)
}

// ValidationError carries the gateway's field-keyed validation messages.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

// Error returns the first field message so the caller can surface a concrete
// reason ("An employee with ID 'EMP001' already exists.") instead of the
// generic envelope message.
func (e *ValidationError) Error() string {
	if msg := e.FirstMessage(); msg != "" {
		return msg
	}
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// FirstMessage picks the first message of the first field group, with field
// names in sorted order so the choice is deterministic.
func (e *ValidationError) FirstMessage() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(e.Fields[k]) > 0 {
			return e.Fields[k][0]
		}
	}
	return ""
}
