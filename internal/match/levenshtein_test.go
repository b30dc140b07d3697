package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"NotFound", "NotFound", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Ok", "ok", 1},

		// Real-world member name examples
		{"badrequest", "badreqest", 1},
		{"notfound", "notfond", 1},
		{"generalerror", "generallerror", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			assert.Equal(t, tt.expected, result)

			// Verify symmetry
			assert.Equal(t, result, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinNormalized("", ""))
	assert.Equal(t, 1.0, LevenshteinNormalized("NotFound", "NotFound"))
	assert.Equal(t, 0.0, LevenshteinNormalized("abc", "xyz"))
	assert.InDelta(t, 0.875, LevenshteinNormalized("notfound", "notfond"), 0.01)
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "badrequest", NormalizeIdent("BadRequest"))
	assert.Equal(t, "badrequest", NormalizeIdent("bad_request"))
	assert.Equal(t, "ok", NormalizeIdent("Ok"))
}

func TestSuggest(t *testing.T) {
	members := []string{"Ok", "BadRequest", "NotFound", "GeneralError", "Unauthorized"}

	tests := []struct {
		name     string
		ref      string
		expected []string
	}{
		{name: "close misspelling", ref: "BadReqest", expected: []string{"BadRequest"}},
		{name: "case and separator noise", ref: "not_found", expected: []string{"NotFound"}},
		{name: "nothing close enough", ref: "Zebra", expected: nil},
		{name: "exact name ranks first", ref: "Ok", expected: []string{"Ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.ref, members, DefaultSuggestScore, DefaultMaxSuggestions)

			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}

			assert.Equal(t, tt.expected[0], got[0])
		})
	}
}
