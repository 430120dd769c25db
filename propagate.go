package ephemeris

import (
	"github.com/stellarcore/ephemeris/gravity"
	"github.com/stellarcore/ephemeris/units"
)

// perturbingBodies lists the bodies whose gravity perturbs a test particle
// enough to matter at this module's precision, keyed by the same GM table
// used elsewhere (see gmKm3S2 in body.go).
var perturbingBodies = []Body{Sun, Jupiter, Saturn, Earth, Venus}

// PropagateStateVector advances a small body or spacecraft's state vector
// from its epoch to targetT under the combined gravity of the Sun and the
// major planets, using a velocity-Verlet N-body integration (see the
// gravity package). positionAU/velocityAUDay are in the EQJ frame.
func PropagateStateVector(epoch Time, positionAU, velocityAUDay [3]float64, targetT Time, maxStepDays float64) (StateVector, Status) {
	bodies := make([]gravity.Body, 0, len(perturbingBodies)+1)
	for _, b := range perturbingBodies {
		state, status := BaryState(b, epoch)
		if status != Success {
			return StateVector{}, status
		}
		bodies = append(bodies, gravity.Body{
			Position: [3]float64{state.X * auKm, state.Y * auKm, state.Z * auKm},
			Velocity: [3]float64{
				units.NewVelocity(state.VX).KmPerSec(),
				units.NewVelocity(state.VY).KmPerSec(),
				units.NewVelocity(state.VZ).KmPerSec(),
			},
			GM: gmKm3S2[b],
		})
	}
	bodies = append(bodies, gravity.Body{
		Position: [3]float64{positionAU[0] * auKm, positionAU[1] * auKm, positionAU[2] * auKm},
		Velocity: [3]float64{
			units.NewVelocity(velocityAUDay[0]).KmPerSec(),
			units.NewVelocity(velocityAUDay[1]).KmPerSec(),
			units.NewVelocity(velocityAUDay[2]).KmPerSec(),
		},
		GM: 0, // massless test particle
	})

	sim, err := gravity.Init(epoch.TtJD(), bodies)
	if err != nil {
		return StateVector{}, InternalError
	}
	result := sim.PropagateTo(targetT.TtJD(), maxStepDays)
	particle := result[len(result)-1]
	return StateVector{
		X: particle.Position[0] / auKm, Y: particle.Position[1] / auKm, Z: particle.Position[2] / auKm,
		VX: units.VelocityFromKmPerSec(particle.Velocity[0]).AUPerDay(),
		VY: units.VelocityFromKmPerSec(particle.Velocity[1]).AUPerDay(),
		VZ: units.VelocityFromKmPerSec(particle.Velocity[2]).AUPerDay(),
		T:  targetT,
	}, Success
}
