// Package byteservice checks whether a byte is zero through the provider
// library, behind an injectable service boundary.
//
// Example usage:
//
//	if !byteservice.IsZero(0) {
//	    log.Fatal("Whoops.")
//	}
//
// The command in cmd/byteservice wraps the same check with configuration
// and logging.
package byteservice

import (
	logAdapter "github.com/bft-labs/byteservice/internal/adapters/log"
	"github.com/bft-labs/byteservice/internal/adapters/provider"
	"github.com/bft-labs/byteservice/internal/app"
	"github.com/bft-labs/byteservice/internal/domain"
)

// IsZero reports whether v is zero, using the provider-backed byte service.
// It does not log.
func IsZero(v uint8) bool {
	a := app.New(provider.NewAdapter(), app.WithLogger(logAdapter.NewNoopLogger()))
	return a.Run(domain.NewByte(v))
}
