package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			text:     "hello world",
			width:    5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "no wrap needed",
			text:     "hello",
			width:    10,
			expected: []string{"hello"},
		},
		{
			name:     "multiple wraps",
			text:     "this is a long text that needs wrapping",
			width:    10,
			expected: []string{"this is a", "long text", "that needs", "wrapping"},
		},
		{
			name:     "exact fit",
			text:     "number of cycles",
			width:    16,
			expected: []string{"number of cycles"},
		},
		{
			name:     "empty string",
			text:     "",
			width:    10,
			expected: nil,
		},
		{
			name:     "single word longer than width",
			text:     "supercalifragilistic",
			width:    10,
			expected: []string{"supercalifragilistic"},
		},
		{
			name:     "long word in the middle",
			text:     "a supercalifragilistic b",
			width:    10,
			expected: []string{"a", "supercalifragilistic", "b"},
		},
		{
			name:     "multiple spaces",
			text:     "hello    world",
			width:    20,
			expected: []string{"hello world"},
		},
		{
			name:     "wide characters count as two cells",
			text:     "日本 語",
			width:    5,
			expected: []string{"日本", "語"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Wrap(tt.text, tt.width)
			assert.Equal(t, tt.expected, result, "wrapped text mismatch for input %q with width %d", tt.text, tt.width)
		})
	}
}

func TestCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-h    ", Cell("-h", 6))
	assert.Equal(t, "--help ", Cell("--help", 6))
	assert.Equal(t, "--license ", Cell("--license", 6))
	assert.Equal(t, "日本  ", Cell("日本", 6))
	assert.Equal(t, "      ", Cell("", 6))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, Width("--help"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 0, Width(""))
}
