package byteservice_test

import (
	"fmt"
	"testing"

	"github.com/bft-labs/byteservice"
)

func TestIsZero(t *testing.T) {
	if !byteservice.IsZero(0) {
		t.Error("IsZero(0) = false, want true")
	}
	if byteservice.IsZero(1) {
		t.Error("IsZero(1) = true, want false")
	}
}

func ExampleIsZero() {
	fmt.Println(byteservice.IsZero(0), byteservice.IsZero(42))
	// Output: true false
}
