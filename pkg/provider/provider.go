package provider

// Payload is the provider input.
type Payload struct {
	Value uint8
}

// Outcome is the provider output.
type Outcome struct {
	Value bool
}

// Functionality reports whether the payload value is zero.
// It is total over the uint8 domain and never fails.
func Functionality(payload Payload) Outcome {
	return Outcome{Value: payload.Value == 0}
}
