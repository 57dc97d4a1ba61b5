package almora

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Arithmetic(t *testing.T) {
	loc := Location{Line: 1, Column: 2, Index: 1}

	t.Run("add moves column and index only", func(t *testing.T) {
		got := loc.Add(3)
		assert.Equal(t, Location{Line: 1, Column: 5, Index: 4}, got)
	})

	t.Run("add line resets column to 1", func(t *testing.T) {
		got := loc.AddLine()
		assert.Equal(t, Location{Line: 2, Column: 1, Index: 2}, got)
	})

	t.Run("beginning is 1:1 at index 0", func(t *testing.T) {
		assert.Equal(t, Location{Line: 1, Column: 1, Index: 0}, Beginning())
	})
}

func TestLocation_AddDelta(t *testing.T) {
	tests := []struct {
		name                                 string
		start                                Location
		deltaLines, deltaColumns, deltaIndex int
		expected                             Location
	}{
		{
			name:  "same line keeps the current column as base",
			start: Location{Line: 1, Column: 4, Index: 3},
			deltaColumns: 5, deltaIndex: 5,
			expected: Location{Line: 1, Column: 9, Index: 8},
		},
		{
			name:  "crossing a line restarts the column at 1",
			start: Location{Line: 1, Column: 4, Index: 3},
			deltaLines: 1, deltaColumns: 5, deltaIndex: 11,
			expected: Location{Line: 2, Column: 6, Index: 14},
		},
		{
			name:  "trailing newline lands on column 1",
			start: Location{Line: 3, Column: 7, Index: 20},
			deltaLines: 2, deltaColumns: 0, deltaIndex: 9,
			expected: Location{Line: 5, Column: 1, Index: 29},
		},
		{
			name:     "zero delta is the identity",
			start:    Location{Line: 2, Column: 2, Index: 5},
			expected: Location{Line: 2, Column: 2, Index: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.AddDelta(tt.deltaLines, tt.deltaColumns, tt.deltaIndex)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSpan_String(t *testing.T) {
	span := NewSpan(Beginning(), Location{Line: 1, Column: 6, Index: 5})
	assert.Equal(t, "1:1-1:6", span.String())

	empty := NewSpan(Beginning(), Beginning())
	assert.Equal(t, "1:1-1:1", empty.String())
}
