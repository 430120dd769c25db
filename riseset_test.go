package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRiseSet_SunRisesWithinADay(t *testing.T) {
	obs := Observer{LatitudeDeg: 40.0, LongitudeDeg: -74.0, HeightM: 0}
	start := MakeTime(2024, 6, 1, 0, 0, 0)
	rise, status := SearchRiseSet(Sun, obs, Rising, start.Ut(), 1.5)
	require.Equal(t, Success, status)
	assert.True(t, rise.Ut() > start.Ut())

	set, status := SearchRiseSet(Sun, obs, Setting, start.Ut(), 1.5)
	require.Equal(t, Success, status)
	assert.True(t, set.Ut() > start.Ut())
}

func TestTwilightTransitions_OrderedAndBounded(t *testing.T) {
	obs := Observer{LatitudeDeg: 40.0, LongitudeDeg: -74.0, HeightM: 0}
	start := MakeTime(2024, 6, 1, 0, 0, 0)
	events, status := TwilightTransitions(obs, start.Ut(), 1.0)
	require.Equal(t, Success, status)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].T >= events[i-1].T)
	}
}
