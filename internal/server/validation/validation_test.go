package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmedNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    any
		wantMsg string
	}{
		{"plain", "Pears", "Pears", ""},
		{"trims whitespace", "  Pears  ", "Pears", ""},
		{"escapes html", `<b>Pears</b>`, "&lt;b&gt;Pears&lt;/b&gt;", ""},
		{"empty", "", "", "must not be empty"},
		{"whitespace only", "   ", "", "must not be empty"},
		{"missing", nil, "", "must be a string"},
		{"not a string", 42.0, "", "must be a string"},
	}

	rule := TrimmedNonEmpty("name")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := rule.apply(tt.raw)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTrimmed(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    any
		wantMsg string
	}{
		{"plain", "fresh", "fresh", ""},
		{"empty allowed", "", "", ""},
		{"missing normalizes to empty", nil, "", ""},
		{"trims and escapes", `  a & b  `, "a &amp; b", ""},
		{"not a string", 1.0, "", "must be a string"},
	}

	rule := Trimmed("description")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := rule.apply(tt.raw)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNonNegativeNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantMsg string
	}{
		{"json number", 25.0, 25, ""},
		{"zero", 0.0, 0, ""},
		{"numeric string", "25", 25, ""},
		{"numeric string with spaces", " 12.5 ", 12.5, ""},
		{"negative number", -5.0, 0, "must not be negative, got -5"},
		{"negative string", "-5", 0, "must not be negative, got -5"},
		{"non-numeric string", "cheap", 0, "must be a number"},
		{"missing", nil, 0, "must be a number"},
		{"bool", true, 0, "must be a number"},
	}

	rule := NonNegativeNumber("priceperkg_l")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := rule.apply(tt.raw)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApply_CollectsAllViolations(t *testing.T) {
	rules := []Rule{
		TrimmedNonEmpty("name"),
		TrimmedNonEmpty("productname"),
		NonNegativeNumber("priceperkg_l"),
	}

	input := map[string]any{
		"name":         "  Farmer X  ",
		"productname":  "",
		"priceperkg_l": -5.0,
	}

	normalized, violations := Apply(rules, input)

	require.Len(t, violations, 2)
	assert.Equal(t, Violation{Field: "productname", Message: "must not be empty"}, violations[0])
	assert.Equal(t, Violation{Field: "priceperkg_l", Message: "must not be negative, got -5"}, violations[1])

	// only passing fields appear in the normalized map
	assert.Equal(t, "Farmer X", normalized["name"])
	assert.NotContains(t, normalized, "productname")
	assert.NotContains(t, normalized, "priceperkg_l")
}

func TestApply_AllPass(t *testing.T) {
	rules := []Rule{
		TrimmedNonEmpty("name"),
		NonNegativeNumber("amountkg_l"),
		Trimmed("description"),
	}

	input := map[string]any{
		"name":       "Farmer X",
		"amountkg_l": "10",
	}

	normalized, violations := Apply(rules, input)

	require.Empty(t, violations)
	assert.Equal(t, "Farmer X", normalized["name"])
	assert.Equal(t, 10.0, normalized["amountkg_l"])
	assert.Equal(t, "", normalized["description"])
}
