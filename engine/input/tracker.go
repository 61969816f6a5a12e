package input

import "github.com/Carmen-Shannon/oxy-showcase/common"

// DragHandler receives drag gestures. rotation.RotationController satisfies it.
type DragHandler interface {
	OnDragStart(x, y, now float64)
	OnDragMove(x, y, now float64)
	OnDragEnd()
}

// TiltHandler receives absolute device tilt in degrees.
type TiltHandler interface {
	OnOrientationEvent(alpha, beta, gamma *float64)
}

// Tracker turns polled pointer samples into drag start, move and end calls.
// Polling hosts (ebiten) call Sample once per update with the current button
// or touch state; event-driven hosts (glfw) can call the handler directly.
type Tracker struct {
	handler DragHandler
	down    bool
	lastX   float64
	lastY   float64
}

// NewTracker creates a Tracker that forwards gestures to handler.
//
// Parameters:
//   - handler: the drag receiver
//
// Returns:
//   - *Tracker: the tracker
func NewTracker(handler DragHandler) *Tracker {
	return &Tracker{handler: handler}
}

// Sample feeds one polled pointer state.
// A press edge starts a drag, motion while held moves it, and a release edge ends it.
// Samples with no motion while held are dropped so the handler's last sample
// time keeps pointing at the last real movement.
//
// Parameters:
//   - pressed: whether the primary button or touch is currently held
//   - x, y: pointer position in screen pixels
//   - now: monotonic time in milliseconds
func (t *Tracker) Sample(pressed bool, x, y, now float64) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.lastX, t.lastY = x, y
		t.handler.OnDragStart(x, y, now)
	case pressed && t.down:
		if x == t.lastX && y == t.lastY {
			return
		}
		t.lastX, t.lastY = x, y
		t.handler.OnDragMove(x, y, now)
	case !pressed && t.down:
		t.down = false
		t.handler.OnDragEnd()
	}
}

// Down reports whether a drag is in progress.
func (t *Tracker) Down() bool {
	return t.down
}

// Stick tilt mapping.
const (
	// StickDeadZone is the deflection below which a stick axis reads as centred.
	StickDeadZone = 0.15
	// StickMaxTilt is the tilt in degrees reported at full deflection.
	StickMaxTilt = 90.0
)

// TiltFromStick maps a gamepad stick deflection to device-style tilt angles.
// Vertical deflection becomes beta (front/back tilt) and horizontal deflection
// becomes gamma (left/right tilt). Each axis is clamped to [-1, 1] and
// rescaled so the dead zone edge maps to zero.
//
// Parameters:
//   - x, y: stick axes in [-1, 1]
//
// Returns:
//   - beta, gamma: tilt in degrees
//   - ok: false when both axes are inside the dead zone
func TiltFromStick(x, y float64) (beta, gamma float64, ok bool) {
	ax := deadZone(common.Clamp(x, -1, 1))
	ay := deadZone(common.Clamp(y, -1, 1))
	if ax == 0 && ay == 0 {
		return 0, 0, false
	}
	return ay * StickMaxTilt, ax * StickMaxTilt, true
}

func deadZone(v float64) float64 {
	switch {
	case v > StickDeadZone:
		return (v - StickDeadZone) / (1 - StickDeadZone)
	case v < -StickDeadZone:
		return (v + StickDeadZone) / (1 - StickDeadZone)
	default:
		return 0
	}
}
