package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation   = errors.New("failed validation")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateRecord    = errors.New("duplicate record")
	ErrNoVolumesFound     = errors.New("no volumes found")
	ErrServiceUnavailable = errors.New("metadata service unavailable")
)

// failedValidation flattens a validation error map into a single error
// wrapping ErrFailedValidation, so that callers can both match on the
// sentinel and surface the field messages.
func failedValidation(errorMap map[string]string) error {
	fields := make([]string, 0, len(errorMap))
	for k := range errorMap {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, fmt.Sprintf("%q %s", k, errorMap[k]))
	}
	return fmt.Errorf("%w: %s", ErrFailedValidation, strings.Join(parts, "; "))
}
