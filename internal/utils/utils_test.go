package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 50))
	assert.Equal(t, 50, Clamp(999, 1, 50))
	assert.Equal(t, 20, Clamp(20, 1, 50))
	assert.Equal(t, 1, Clamp(1, 1, 50))
	assert.Equal(t, 50, Clamp(50, 1, 50))
}

func TestInCircle(t *testing.T) {
	// (205,205) is ~7.07 from (200,200)
	assert.True(t, InCircle(205, 205, 200, 200, 20))
	// exactly on the edge counts as inside
	assert.True(t, InCircle(220, 200, 200, 200, 20))
	assert.False(t, InCircle(221, 200, 200, 200, 20))
	assert.False(t, InCircle(215, 215, 200, 200, 20))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-6)
}

func TestPRNGService_Deterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPRNGService_IntRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 200; i++ {
		v := s.IntRange(20, 380)
		assert.GreaterOrEqual(t, v, 20)
		assert.LessOrEqual(t, v, 380)
	}
	assert.Equal(t, 5, s.IntRange(5, 4))
}

func TestPRNGService_IntnNonPositive(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, 0, s.Intn(0))
	assert.Equal(t, 0, s.Intn(-3))
}

func TestPRNGService_Float64Range(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		f := s.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
