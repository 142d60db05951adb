package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstDuplicate(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
		found    bool
	}{
		{
			name:  "nil slice",
			input: nil,
		},
		{
			name:  "single element",
			input: []string{"egg"},
		},
		{
			name:  "all distinct",
			input: []string{"egg", "flour", "milk"},
		},
		{
			name:     "reports first repeated value",
			input:    []string{"egg", "flour", "milk", "flour", "egg"},
			expected: "flour",
			found:    true,
		},
		{
			name:  "comparison is case sensitive",
			input: []string{"Egg", "egg"},
		},
		{
			name:     "empty strings count",
			input:    []string{"", "egg", ""},
			expected: "",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup, found := FirstDuplicate(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, dup)
		})
	}
}
