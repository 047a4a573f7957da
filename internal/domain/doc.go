// Package domain contains the value types the byte service works with.
//
// This package is the innermost layer. It has no dependencies on the
// provider library, logging or configuration.
//
// # Values
//
//   - [Byte]: a single unsigned 8-bit value
//   - [Boolean]: a single logical value
//
// Both types wrap an unexported field, so they can only be built through
// [NewByte] and [NewBoolean]. Go does not allow converting them to a
// structurally similar type from another package, which keeps the provider
// adapter the one place where provider values are translated.
//
// Values are immutable and comparable with ==.
package domain
