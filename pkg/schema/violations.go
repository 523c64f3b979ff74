package schema

import (
	"fmt"
	"strings"
)

// Violation is a single field-level validation failure. Kind identifies the
// failed rule (required, type, maximum, pattern, ...); this package never
// interprets kinds, it only carries them.
type Violation struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Message != "" {
		return v.Message
	}
	return v.Kind
}

// Violations is the full ordered collection of failures produced by one
// validation attempt. It implements error so engines can return it directly;
// callers distinguish it from configuration errors with errors.As.
type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Field, violation.String()))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ByField regroups violations into a field-keyed mapping, preserving report
// order within each field. Duplicate reports for the same field merge into
// one list instead of overwriting each other.
func (v Violations) ByField() map[string][]Violation {
	if len(v) == 0 {
		return nil
	}
	grouped := make(map[string][]Violation)
	for _, violation := range v {
		grouped[violation.Field] = append(grouped[violation.Field], violation)
	}
	return grouped
}
