package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PS-\d{13}-\d{4}$`)

	for i := 0; i < 10; i++ {
		number := NewOrderNumber()
		assert.True(t, pattern.MatchString(number), "unexpected order number %q", number)
	}
}

func TestGenHashID(t *testing.T) {
	a := GenHashID("salt", 123)
	b := GenHashID("salt", 123)
	c := GenHashID("salt", 124)
	d := GenHashID("other", 123)

	require.NotEmpty(t, a)
	assert.GreaterOrEqual(t, len(a), 12)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestMtRandWithinRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := MtRand(0, 9999)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 9999)
	}
}
