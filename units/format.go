package units

import (
	"fmt"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// AngleValue converts an Angle to the soniakeys/unit representation used
// throughout the ecosystem this package's sibling repositories depend on,
// letting callers hand the result to other soniakeys-family code.
func (a Angle) AngleValue() unit.Angle {
	return unit.AngleFromDeg(a.Degrees())
}

// FormatDMS renders an angle as signed degrees/minutes/seconds using
// sexagesimal's symbol formatting (° ' ") at the given number of decimal
// places on the seconds field.
func (a Angle) FormatDMS(decimals int) string {
	return fmt.Sprintf("%.*d", decimals, sexa.FmtAngle(a.AngleValue()))
}

// FormatHMS renders an angle as signed hours/minutes/seconds of right
// ascension.
func (a Angle) FormatHMS(decimals int) string {
	return fmt.Sprintf("%.*d", decimals, sexa.FmtHourAngle(unit.HourAngle(a.Radians())))
}
