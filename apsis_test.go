package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchLunarApsis_DistancePlausible(t *testing.T) {
	start := MakeTime(2024, 1, 1, 0, 0, 0)
	apsis, status := SearchLunarApsis(start)
	require.Equal(t, Success, status)
	assert.True(t, apsis.T.Ut() > start.Ut())

	// The Moon's distance from Earth ranges roughly 0.0024-0.0027 AU.
	assert.True(t, apsis.Distance > 0.0020 && apsis.Distance < 0.0030)
}

func TestNextLunarApsis_AlternatesKind(t *testing.T) {
	start := MakeTime(2024, 1, 1, 0, 0, 0)
	first, status := SearchLunarApsis(start)
	require.Equal(t, Success, status)

	second, status := NextLunarApsis(first)
	require.Equal(t, Success, status)
	assert.True(t, second.T.Ut() > first.T.Ut())
	assert.NotEqual(t, first.Kind, second.Kind)
}

func TestSearchPlanetApsis_EarthPerihelionPlausible(t *testing.T) {
	start := MakeTime(2024, 1, 1, 0, 0, 0)
	apsis, status := SearchPlanetApsis(Earth, start)
	require.Equal(t, Success, status)
	assert.True(t, apsis.Distance > 0.95 && apsis.Distance < 1.05)
}

func TestNextPlanetApsis_AlternatesKind(t *testing.T) {
	start := MakeTime(2024, 1, 1, 0, 0, 0)
	first, status := SearchPlanetApsis(Earth, start)
	require.Equal(t, Success, status)

	second, status := NextPlanetApsis(Earth, first)
	require.Equal(t, Success, status)
	assert.True(t, second.T.Ut() > first.T.Ut())
	assert.NotEqual(t, first.Kind, second.Kind)
}
