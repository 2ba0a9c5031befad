package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries per-field messages for malformed or out-of-range
// input. Checks run before any persistence.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) { f[field] = msg }

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func requireLength(f fieldErrors, field, value string, min, max int) {
	n := len(strings.TrimSpace(value))
	switch {
	case n < min:
		f.add(field, fmt.Sprintf("must be at least %d characters", min))
	case n > max:
		f.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func requireRange(f fieldErrors, field string, value, min, max int) {
	if value < min || value > max {
		f.add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

func limitLength(f fieldErrors, field, value string, max int) {
	if len(value) > max {
		f.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}
