package gravity

import (
	"math"
	"testing"
)

func TestInit_RejectsEmptyBodyList(t *testing.T) {
	_, err := Init(2451545.0, nil)
	if err == nil {
		t.Error("expected an error for an empty body list")
	}
}

func TestPropagateTo_TwoBodyCircularOrbitConservesRadius(t *testing.T) {
	const earthOrbitKm = 149597870.7
	const earthSpeedKmS = 29.78

	bodies := []Body{
		{Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}, GM: GmSunKm3S2},
		{Position: [3]float64{earthOrbitKm, 0, 0}, Velocity: [3]float64{0, earthSpeedKmS, 0}, GM: 398600.4418},
	}
	sim, err := Init(2451545.0, bodies)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	result := sim.PropagateTo(2451545.0+30, 0.25)
	p := result[1].Position
	dist := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])

	if math.Abs(dist-earthOrbitKm)/earthOrbitKm > 0.01 {
		t.Errorf("orbital radius drifted by more than 1%%: got %f, want ~%f", dist, earthOrbitKm)
	}
}

func TestPropagateTo_BackwardInTime(t *testing.T) {
	bodies := []Body{
		{Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}, GM: GmSunKm3S2},
		{Position: [3]float64{149597870.7, 0, 0}, Velocity: [3]float64{0, 29.78, 0}, GM: 0},
	}
	sim, err := Init(2451545.0, bodies)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	forward := sim.PropagateTo(2451545.0+5, 0.5)
	sim2, _ := Init(2451545.0+5, forward)
	back := sim2.PropagateTo(2451545.0, 0.5)

	for i := 0; i < 3; i++ {
		if math.Abs(back[1].Position[i]-bodies[1].Position[i]) > 10.0 {
			t.Errorf("component %d: propagating forward then back should approximately return to start, got %f want %f",
				i, back[1].Position[i], bodies[1].Position[i])
		}
	}
}
