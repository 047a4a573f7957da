// Package provider adapts the provider library to ports.ByteService.
//
// This is the only package allowed to import pkg/provider. Should the
// library change its types, only this adapter needs updating.
package provider

import (
	"github.com/bft-labs/byteservice/internal/domain"
	"github.com/bft-labs/byteservice/internal/ports"
	providerlib "github.com/bft-labs/byteservice/pkg/provider"
)

var _ ports.ByteService = (*Adapter)(nil)

// Adapter implements ports.ByteService by calling the provider library.
type Adapter struct{}

// NewAdapter creates a new provider adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// IsZero converts b to a provider payload, calls the provider and converts
// the outcome back.
func (a *Adapter) IsZero(b domain.Byte) domain.Boolean {
	outcome := providerlib.Functionality(providerlib.Payload{Value: b.Uint8()})
	return domain.NewBoolean(outcome.Value)
}
