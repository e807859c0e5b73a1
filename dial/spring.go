package dial

import "math"

// Spring tuning. Damping is set a touch under critical for the default
// stiffness, which gives the hand a hint of overshoot before it settles.
const (
	springStiffness = 170.0
	springDamping   = 24.0

	// Convergence tolerances, in degrees and degrees/second.
	settleAngle    = 0.05
	settleVelocity = 0.5

	// Steps longer than this are integrated in pieces so a stalled frame
	// cannot destabilize the integrator.
	maxSpringStep = 1.0 / 30.0
)

// SpringState is the one piece of continuity the dial carries across
// frames: the hand's current angle and angular velocity. It is a plain
// value threaded by the caller: compose with the angle it reports, step
// it once per frame, and store the returned state for the next frame.
type SpringState struct {
	Angle    float64
	Velocity float64
}

// NewSpringState returns a spring at rest at the given angle.
func NewSpringState(angle float64) SpringState {
	return SpringState{Angle: angle}
}

// Step advances the spring toward target by dt seconds and reports the
// new state and whether it has settled. Retargeting mid-flight needs no
// special handling: the integration always starts from the current angle
// and velocity, so a new target simply bends the trajectory in place.
func (s SpringState) Step(target, dt float64) (SpringState, bool) {
	for dt > 0 {
		h := dt
		if h > maxSpringStep {
			h = maxSpringStep
		}
		dt -= h

		// Semi-implicit Euler keeps the damped oscillator stable at
		// game-loop step sizes.
		accel := springStiffness*(target-s.Angle) - springDamping*s.Velocity
		s.Velocity += accel * h
		s.Angle += s.Velocity * h
	}

	if math.Abs(target-s.Angle) < settleAngle && math.Abs(s.Velocity) < settleVelocity {
		s.Angle = target
		s.Velocity = 0
		return s, true
	}
	return s, false
}
