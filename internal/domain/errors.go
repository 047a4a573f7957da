package domain

import "errors"

// Domain errors can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("byteservice: invalid configuration")

	// ErrNilByteService is the panic value used when an application is built
	// without a byte service.
	ErrNilByteService = errors.New("byteservice: nil byte service")
)
