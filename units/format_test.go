package units

import (
	"strings"
	"testing"

	"github.com/soniakeys/unit"
)

func TestAngleValue_MatchesDegrees(t *testing.T) {
	a := AngleFromDegrees(45.0)
	got := a.AngleValue()
	want := unit.AngleFromDeg(45.0)
	if got != want {
		t.Errorf("AngleValue() = %v, want %v", got, want)
	}
}

func TestFormatDMS_ContainsDegreeSymbol(t *testing.T) {
	a := AngleFromDegrees(-23.5)
	s := a.FormatDMS(1)
	if !strings.Contains(s, "°") {
		t.Errorf("FormatDMS(%v) = %q, want a degree symbol", a, s)
	}
}

func TestFormatHMS_NonEmpty(t *testing.T) {
	a := AngleFromHours(6.5)
	s := a.FormatHMS(2)
	if s == "" {
		t.Error("FormatHMS returned an empty string")
	}
}
