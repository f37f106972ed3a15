// Package validation applies declarative per-field rules to incoming
// submissions before they reach the data access layer. A rule both
// normalizes a field (trim, HTML-escape) and checks it; failures are
// collected into a per-field violation list rather than aborting on the
// first bad field.
package validation

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Violation describes a single field that failed its rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule normalizes and checks one named field of a submission.
// apply returns the normalized value and an error message ("" when the
// field passes).
type Rule struct {
	Field string
	apply func(raw any) (any, string)
}

// TrimmedNonEmpty requires a string that is non-empty after trimming.
// The stored value is trimmed and HTML-escaped.
func TrimmedNonEmpty(field string) Rule {
	return Rule{Field: field, apply: func(raw any) (any, string) {
		s, ok := raw.(string)
		if !ok {
			return "", "must be a string"
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", "must not be empty"
		}
		return html.EscapeString(s), ""
	}}
}

// Trimmed accepts any string, including an empty one. The stored value is
// trimmed and HTML-escaped. A missing field normalizes to "".
func Trimmed(field string) Rule {
	return Rule{Field: field, apply: func(raw any) (any, string) {
		if raw == nil {
			return "", ""
		}
		s, ok := raw.(string)
		if !ok {
			return "", "must be a string"
		}
		return html.EscapeString(strings.TrimSpace(s)), ""
	}}
}

// NonNegativeNumber requires a value that parses as a float >= 0.
// JSON numbers are taken as-is; numeric strings are parsed too, since
// form submissions deliver numbers as text.
func NonNegativeNumber(field string) Rule {
	return Rule{Field: field, apply: func(raw any) (any, string) {
		var f float64
		switch v := raw.(type) {
		case float64:
			f = v
		case string:
			var err error
			f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, "must be a number"
			}
		default:
			return nil, "must be a number"
		}
		if f < 0 {
			return nil, fmt.Sprintf("must not be negative, got %v", f)
		}
		return f, ""
	}}
}

// Apply runs every rule against the input map and returns the normalized
// values plus the full violation list. The normalized map only contains
// fields that passed; callers must not use it when violations are present.
func Apply(rules []Rule, input map[string]any) (map[string]any, []Violation) {
	normalized := make(map[string]any, len(rules))
	var violations []Violation

	for _, rule := range rules {
		value, msg := rule.apply(input[rule.Field])
		if msg != "" {
			violations = append(violations, Violation{Field: rule.Field, Message: msg})
			continue
		}
		normalized[rule.Field] = value
	}
	return normalized, violations
}
