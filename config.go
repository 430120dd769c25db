package ephemeris

// Aberration selects whether a position accounts for the finite speed of
// light and the observer's own velocity (stellar aberration).
type Aberration int

const (
	Corrected Aberration = iota // apply light-time and aberration correction
	None                        // geometric position, no correction
)

// EquatorDate selects which equator/equinox a returned equatorial position
// is expressed in.
type EquatorDate int

const (
	OfDate EquatorDate = iota // true equator and equinox of the observation date
	J2000                     // mean equator and equinox of J2000.0
)

// Refraction selects the atmospheric refraction model applied to a computed
// altitude.
type Refraction int

const (
	NoRefraction Refraction = iota
	NormalRefraction
)
