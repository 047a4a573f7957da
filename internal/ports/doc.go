// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundary between the application core and the outside
// world. They say what the application needs from external code without
// saying how that need is met.
//
// # Port Interfaces
//
//   - [ByteService]: classifies a byte; backed by the provider library
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them. Tests inject
// the mocks in internal/ports/mocks instead.
//
//go:generate mockery
package ports
