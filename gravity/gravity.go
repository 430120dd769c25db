// Package gravity implements a general-purpose N-body gravity simulator: a
// velocity-Verlet (leapfrog) symplectic integrator over an arbitrary set of
// massive bodies, used as the propagator behind the module's small-body
// state propagation and Pluto's short-range refinement.
package gravity

import (
	"math"

	"github.com/pkg/errors"
)

// GmSunKm3S2 is the Sun's gravitational parameter in km^3/s^2, the
// reference mass unit bodies in a Simulator are expressed relative to via
// their own GM values.
const GmSunKm3S2 = 1.32712440018e11

// Body is one massive point in a Simulator: a position and velocity in km
// and km/s, plus its gravitational parameter GM (km^3/s^2). A GM of zero
// marks a massless test particle that is accelerated by every other body
// but does not itself perturb them.
type Body struct {
	Position [3]float64
	Velocity [3]float64
	GM       float64
}

// Simulator advances a fixed set of bodies under mutual Newtonian gravity.
type Simulator struct {
	bodies []Body
	t      float64 // TDB Julian date of the current state
}

// Init constructs a Simulator at epoch tdbJD with the given initial bodies.
// It returns an error if fewer than one body is supplied.
func Init(tdbJD float64, bodies []Body) (*Simulator, error) {
	if len(bodies) == 0 {
		return nil, errors.New("gravity: Init requires at least one body")
	}
	cp := make([]Body, len(bodies))
	copy(cp, bodies)
	return &Simulator{bodies: cp, t: tdbJD}, nil
}

// Time returns the simulator's current epoch, TDB Julian date.
func (s *Simulator) Time() float64 { return s.t }

// Bodies returns a copy of the current body states.
func (s *Simulator) Bodies() []Body {
	cp := make([]Body, len(s.bodies))
	copy(cp, s.bodies)
	return cp
}

// accelerations computes the gravitational acceleration on each body from
// every other body (km/s^2), skipping a body's self-interaction.
func (s *Simulator) accelerations() [][3]float64 {
	n := len(s.bodies)
	acc := make([][3]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || s.bodies[j].GM == 0 {
				continue
			}
			dx := s.bodies[j].Position[0] - s.bodies[i].Position[0]
			dy := s.bodies[j].Position[1] - s.bodies[i].Position[1]
			dz := s.bodies[j].Position[2] - s.bodies[i].Position[2]
			r2 := dx*dx + dy*dy + dz*dz
			r := math.Sqrt(r2)
			if r == 0 {
				continue
			}
			f := s.bodies[j].GM / (r2 * r)
			acc[i][0] += f * dx
			acc[i][1] += f * dy
			acc[i][2] += f * dz
		}
	}
	return acc
}

// Update advances the simulation by dtDays (which may be negative, to
// propagate backward in time) using a single velocity-Verlet step. Taking
// many small steps is more accurate than one large step; callers needing
// high precision over long intervals should call Update repeatedly with a
// small dtDays.
func (s *Simulator) Update(dtDays float64) {
	dt := dtDays * 86400.0 // seconds
	n := len(s.bodies)

	a0 := s.accelerations()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			s.bodies[i].Position[k] += s.bodies[i].Velocity[k]*dt + 0.5*a0[i][k]*dt*dt
		}
	}
	a1 := s.accelerations()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			s.bodies[i].Velocity[k] += 0.5 * (a0[i][k] + a1[i][k]) * dt
		}
	}
	s.t += dtDays
}

// PropagateTo advances the simulator to tdbJD in steps no larger than
// maxStepDays, returning the resulting body states. tdbJD may be before or
// after the simulator's current epoch.
func (s *Simulator) PropagateTo(tdbJD, maxStepDays float64) []Body {
	if maxStepDays <= 0 {
		maxStepDays = 1.0
	}
	remaining := tdbJD - s.t
	dir := 1.0
	if remaining < 0 {
		dir = -1.0
	}
	for math.Abs(remaining) > 1e-9 {
		step := dir * maxStepDays
		if math.Abs(step) > math.Abs(remaining) {
			step = remaining
		}
		s.Update(step)
		remaining = tdbJD - s.t
	}
	return s.Bodies()
}
