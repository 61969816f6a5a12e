package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FieldError reports one rejected configuration value.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %v %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every field and reports all failures at once.
//
// Returns:
//   - error: nil, or the combined FieldErrors (each matches ErrInvalidConfig)
func (c Config) Validate() error {
	var err error
	check := func(ok bool, field string, value any, reason string) {
		if !ok {
			err = multierr.Append(err, &FieldError{Field: field, Value: value, Reason: reason})
		}
	}

	w := c.Window
	check(w.Width > 0, "window.width", w.Width, "must be positive")
	check(w.Height > 0, "window.height", w.Height, "must be positive")

	e := c.Engine
	check(e.TickRate > 0, "engine.tick_rate", e.TickRate, "must be positive")
	check(e.RenderFrameLimit >= 0, "engine.render_frame_limit", e.RenderFrameLimit, "must not be negative")
	check(e.ComputeWorkers >= 0, "engine.compute_workers", e.ComputeWorkers, "must not be negative")
	check(e.PresentMode == "" || e.PresentMode == "vsync" || e.PresentMode == "uncapped",
		"engine.present_mode", e.PresentMode, "must be vsync or uncapped")

	r := c.Rotation
	check(r.Sensitivity > 0, "rotation.sensitivity", r.Sensitivity, "must be positive")
	check(r.Friction > 0 && r.Friction < 1, "rotation.friction", r.Friction, "must be in (0, 1)")
	check(r.IdleTimeoutMs > 0, "rotation.idle_timeout_ms", r.IdleTimeoutMs, "must be positive")
	check(r.AutoRotateRate >= 0, "rotation.auto_rotate_rate", r.AutoRotateRate, "must not be negative")
	check(r.PitchLimitRadians > 0 && r.PitchLimitRadians <= math.Pi/2,
		"rotation.pitch_limit_radians", r.PitchLimitRadians, "must be in (0, pi/2]")
	check(r.VelocityEpsilon >= 0, "rotation.velocity_epsilon", r.VelocityEpsilon, "must not be negative")
	check(r.OrientationDamping > 0, "rotation.orientation_damping", r.OrientationDamping, "must be positive")
	check(r.MinDeltaTimeMs > 0, "rotation.min_delta_time_ms", r.MinDeltaTimeMs, "must be positive")
	check(r.ResetDurationMs > 0, "rotation.reset_duration_ms", r.ResetDurationMs, "must be positive")

	l := c.Log
	check(l.Format == "json" || l.Format == "console", "log.format", l.Format, "must be json or console")

	return err
}
