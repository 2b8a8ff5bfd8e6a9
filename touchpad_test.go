package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchpadFirstSamplePrimes(t *testing.T) {
	tp := NewTouchpad(0.05, 4)

	dx, dy := tp.Vertical(64)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	dx, dy = tp.Horizontal(100)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
}

func TestTouchpadVerticalDelta(t *testing.T) {
	tp := NewTouchpad(0.05, 4)

	tp.Vertical(64)
	dx, dy := tp.Vertical(70)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 24, dy) // (70-64) * 4

	dx, dy = tp.Vertical(70) // unchanged value
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
}

func TestTouchpadHorizontalDelta(t *testing.T) {
	tp := NewTouchpad(0.05, 4)

	tp.Horizontal(0)
	dx, dy := tp.Horizontal(200)
	assert.Equal(t, 10, dx) // 200 * 0.05
	assert.Equal(t, 0, dy)
}

func TestTouchpadAxesAreIndependent(t *testing.T) {
	tp := NewTouchpad(0.05, 4)

	tp.Vertical(64)
	dx, dy := tp.Horizontal(100) // first horizontal sample still primes
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	_, dy = tp.Vertical(65)
	assert.Equal(t, 4, dy)
}

func TestTouchpadTruncatesTowardZero(t *testing.T) {
	tp := NewTouchpad(0.05, 4)
	tp.Horizontal(0)
	dx, _ := tp.Horizontal(-39) // -1.95 px
	assert.Equal(t, -1, dx)

	tp = NewTouchpad(0.05, 4)
	tp.Horizontal(0)
	dx, _ = tp.Horizontal(19) // 0.95 px
	assert.Equal(t, 0, dx)
}
