package rounding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfUp(t *testing.T) {
	assert.Equal(t, 2.35, HalfUp(2.345, 2))
	assert.Equal(t, 2.34, HalfUp(2.344, 2))
	assert.Equal(t, 0.1369, HalfUp(0.13690001, 4))
	assert.Equal(t, -2.35, HalfUp(-2.345, 2))
	assert.Equal(t, 44.0, HalfUp(44.0, 2))
}
