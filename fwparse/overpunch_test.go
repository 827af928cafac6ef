package fwparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverpunch_RoundTrip(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		for _, sign := range []int{1, -1} {
			c, ok := EncodeOverpunch(digit, sign)
			assert.True(t, ok)

			gotDigit, gotSign, ok := DecodeOverpunch(c)
			assert.True(t, ok)
			assert.Equal(t, digit, gotDigit)
			assert.Equal(t, sign, gotSign)
		}
	}
}

func TestOverpunch_KnownCharacters(t *testing.T) {
	d, s, ok := DecodeOverpunch('{')
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	assert.Equal(t, 1, s)

	d, s, ok = DecodeOverpunch('I')
	assert.True(t, ok)
	assert.Equal(t, 9, d)
	assert.Equal(t, 1, s)

	d, s, ok = DecodeOverpunch('}')
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	assert.Equal(t, -1, s)

	d, s, ok = DecodeOverpunch('R')
	assert.True(t, ok)
	assert.Equal(t, 9, d)
	assert.Equal(t, -1, s)
}

func TestOverpunch_Undecodable(t *testing.T) {
	_, _, ok := DecodeOverpunch('5')
	assert.False(t, ok)
	_, _, ok = DecodeOverpunch('Z')
	assert.False(t, ok)
}
