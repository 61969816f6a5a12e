package rotation

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
)

// RotationControllerOption is a functional option for configuring a RotationController.
type RotationControllerOption func(*rotationControllerImpl)

// WithSensitivity sets the pointer sensitivity.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of pointer travel
//
// Returns:
//   - RotationControllerOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.sensitivity = sensitivity
	}
}

// WithFriction sets the per-tick velocity decay factor.
//
// Parameters:
//   - friction: multiplier applied to angular velocity each idle tick, 0 < friction < 1
//
// Returns:
//   - RotationControllerOption: functional option to set the friction
func WithFriction(friction float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.friction = friction
	}
}

// WithIdleTimeout sets how long the controller waits after the last interaction
// before auto-rotating.
//
// Parameters:
//   - ms: idle timeout in milliseconds
//
// Returns:
//   - RotationControllerOption: functional option to set the idle timeout
func WithIdleTimeout(ms float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.idleTimeout = ms
	}
}

// WithAutoRotateRate sets the yaw added per tick while auto-rotating.
// The rate is per frame, so the visible speed scales with frame rate.
//
// Parameters:
//   - rate: radians per tick
//
// Returns:
//   - RotationControllerOption: functional option to set the auto-rotate rate
func WithAutoRotateRate(rate float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.autoRotateRate = rate
	}
}

// WithPitchLimit sets the symmetric pitch clamp.
//
// Parameters:
//   - limit: maximum absolute pitch in radians
//
// Returns:
//   - RotationControllerOption: functional option to set the pitch limit
func WithPitchLimit(limit float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.pitchLimit = limit
	}
}

// WithVelocityEpsilon sets the magnitude below which a decaying velocity
// component snaps to zero.
//
// Parameters:
//   - epsilon: snap threshold
//
// Returns:
//   - RotationControllerOption: functional option to set the velocity epsilon
func WithVelocityEpsilon(epsilon float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.velocityEpsilon = epsilon
	}
}

// WithOrientationDamping sets the divisor applied to device tilt angles.
//
// Parameters:
//   - damping: divisor for radians derived from beta/gamma
//
// Returns:
//   - RotationControllerOption: functional option to set the damping
func WithOrientationDamping(damping float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.orientationDamping = damping
	}
}

// WithMinDeltaTime sets the floor used for the time between drag samples.
//
// Parameters:
//   - ms: minimum delta time in milliseconds, must be > 0
//
// Returns:
//   - RotationControllerOption: functional option to set the delta-time floor
func WithMinDeltaTime(ms float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.minDeltaTime = ms
	}
}

// WithInitialOrientation sets the orientation the controller starts at.
//
// Parameters:
//   - yaw: initial yaw in radians
//   - pitch: initial pitch in radians, clamped to the pitch limit
//
// Returns:
//   - RotationControllerOption: functional option to set the starting orientation
func WithInitialOrientation(yaw, pitch float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.orientation = Orientation{Yaw: yaw, Pitch: pitch}
	}
}

// WithHome sets the orientation Reset returns to.
//
// Parameters:
//   - yaw: home yaw in radians
//   - pitch: home pitch in radians, clamped to the pitch limit
//
// Returns:
//   - RotationControllerOption: functional option to set the home orientation
func WithHome(yaw, pitch float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.home = Orientation{Yaw: yaw, Pitch: pitch}
	}
}

// WithResetDuration sets how long Reset takes to ease back to home.
//
// Parameters:
//   - ms: duration in milliseconds
//
// Returns:
//   - RotationControllerOption: functional option to set the reset duration
func WithResetDuration(ms float64) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		rc.resetDuration = ms
	}
}

// WithLogger sets the logger used for state transition messages.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - RotationControllerOption: functional option to set the logger
func WithLogger(l logger.Logger) RotationControllerOption {
	return func(rc *rotationControllerImpl) {
		if l != nil {
			rc.log = l
		}
	}
}
