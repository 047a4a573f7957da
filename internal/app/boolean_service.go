package app

import "github.com/bft-labs/byteservice/internal/domain"

// BooleanService inspects Boolean values.
// It has no external dependency, so it is used as a concrete type and is
// not injected.
type BooleanService struct{}

// IsTrue returns the wrapped value.
func (BooleanService) IsTrue(b domain.Boolean) bool {
	return b.Bool()
}
