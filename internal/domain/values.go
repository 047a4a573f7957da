package domain

import "fmt"

// Byte is an unsigned 8-bit value as seen by the application.
type Byte struct {
	v uint8
}

// NewByte wraps v.
func NewByte(v uint8) Byte {
	return Byte{v: v}
}

// Uint8 returns the wrapped value.
func (b Byte) Uint8() uint8 {
	return b.v
}

// String implements fmt.Stringer.
func (b Byte) String() string {
	return fmt.Sprintf("Byte(%d)", b.v)
}

// Boolean is a logical value as seen by the application.
type Boolean struct {
	v bool
}

// NewBoolean wraps v.
func NewBoolean(v bool) Boolean {
	return Boolean{v: v}
}

// Bool returns the wrapped value.
func (b Boolean) Bool() bool {
	return b.v
}

// String implements fmt.Stringer.
func (b Boolean) String() string {
	return fmt.Sprintf("Boolean(%t)", b.v)
}
