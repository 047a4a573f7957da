package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bft-labs/byteservice/internal/domain"
)

func TestAdapter_IsZero(t *testing.T) {
	a := NewAdapter()

	assert.Equal(t, domain.NewBoolean(true), a.IsZero(domain.NewByte(0)))
	assert.Equal(t, domain.NewBoolean(false), a.IsZero(domain.NewByte(1)))
}

func TestAdapter_IsZero_FullRange(t *testing.T) {
	a := NewAdapter()

	for v := 1; v <= 255; v++ {
		if got := a.IsZero(domain.NewByte(uint8(v))); got != domain.NewBoolean(false) {
			t.Errorf("IsZero(%d) = %v, want Boolean(false)", v, got)
		}
	}
}

func TestAdapter_Deterministic(t *testing.T) {
	a := NewAdapter()
	in := domain.NewByte(0)

	assert.Equal(t, a.IsZero(in), a.IsZero(in))
}
