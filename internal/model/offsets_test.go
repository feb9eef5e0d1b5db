package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOffsets(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		expected Offsets
	}{
		{"empty", nil, Offsets{}},
		{"single", []int{0}, Offsets{0}},
		{"sorted", []int{2, 0, 1}, Offsets{0, 1, 2}},
		{"dedup", []int{3, 1, 3, 1}, Offsets{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewOffsets(tt.in...))
		})
	}
}

func TestOffsets_Queries(t *testing.T) {
	o := NewOffsets(4, 1, 7)

	assert.Equal(t, 3, o.Len())
	assert.True(t, o.Contains(4))
	assert.False(t, o.Contains(5))
	assert.Equal(t, 1, o.Min())
	assert.Equal(t, 7, o.Max())

	empty := NewOffsets()
	assert.Equal(t, -1, empty.Min())
	assert.Equal(t, -1, empty.Max())
	assert.False(t, empty.Contains(0))
}
