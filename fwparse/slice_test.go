package fwparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_ExactWidth(t *testing.T) {
	cases := []struct {
		line        string
		start, n    int
		wantLen     int
	}{
		{"hello world", 0, 5, 5},
		{"hello world", 6, 5, 5},
		{"hi", 0, 10, 10},
		{"hi", 50, 4, 4},
		{"hi", 0, 0, 0},
		{"hi", 0, -3, 0},
	}
	for _, c := range cases {
		got := Slice(c.line, c.start, c.n)
		assert.Len(t, got, c.wantLen)
	}
}

func TestSlice_PadsShortLines(t *testing.T) {
	assert.Equal(t, "hi   ", Slice("hi", 0, 5))
	assert.Equal(t, "     ", Slice("hi", 10, 5))
}

func TestSlice_ExactSubstring(t *testing.T) {
	assert.Equal(t, "world", Slice("hello world", 6, 5))
}
