package pluto

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestHeliocentricEcliptic_WithinTabulatedRange(t *testing.T) {
	pos, err := HeliocentricEcliptic(2451545.0)
	if err != nil {
		t.Fatalf("unexpected error within tabulated range: %v", err)
	}
	dist := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	// Pluto's heliocentric distance ranges roughly 30-49 AU.
	if dist < 29 || dist > 50 {
		t.Errorf("distance = %f AU, want within [29, 50]", dist)
	}
}

func TestHeliocentricEcliptic_OutOfRangeFallsBack(t *testing.T) {
	pos, err := HeliocentricEcliptic(3000000.0)
	if err == nil {
		t.Fatal("expected ErrOutOfRange-wrapped error past tabulated segments")
	}
	if errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expected error to wrap ErrOutOfRange, got: %v", err)
	}
	dist := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	if dist < 25 || dist > 55 {
		t.Errorf("fallback distance = %f AU, want roughly within Pluto's orbital range", dist)
	}
}
