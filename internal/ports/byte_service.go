package ports

import "github.com/bft-labs/byteservice/internal/domain"

// ByteService classifies bytes.
// The production implementation calls out to the provider library; tests
// substitute a mock.
type ByteService interface {
	// IsZero reports whether the byte's value is zero.
	// Implementations must return the same result for the same input.
	IsZero(b domain.Byte) domain.Boolean
}
