package coord

// NutationPrecision names a precision level for the IAU 2000A nutation series.
// The setting is stored but not consulted by the nutation code, which always
// evaluates the 30-term series.
type NutationPrecision int

const (
	// NutationStandard uses the 30 largest luni-solar terms (~1 arcsec precision).
	// This is ~45x faster than the full series and sufficient for most applications,
	// since other error sources (light-time ~20 arcsec, GMST formula ~0.3 arcsec/century)
	// dominate the overall accuracy budget.
	NutationStandard NutationPrecision = iota

	// NutationFull is reserved for a future extended-term series; the full
	// 678 luni-solar + 687 planetary coefficient tables aren't carried by
	// this package, so it currently falls back to NutationStandard.
	NutationFull
)

var nutationPrecision = NutationStandard

// SetNutationPrecision sets the nutation precision for the coord package.
// Default is NutationStandard (30 terms, fast).
// Not safe for concurrent use — call once at program startup.
func SetNutationPrecision(p NutationPrecision) {
	nutationPrecision = p
}

// GetNutationPrecision returns the current nutation precision setting.
func GetNutationPrecision() NutationPrecision {
	return nutationPrecision
}
