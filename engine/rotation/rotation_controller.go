package rotation

// InteractionState is the controller's two-state interaction machine.
type InteractionState int

const (
	// StateIdle means no pointer is held; momentum, reset or auto-rotation drive the orientation.
	StateIdle InteractionState = iota
	// StateDragging means a pointer is held and drag moves write the orientation directly.
	StateDragging
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Orientation is the 2-axis rotation applied to the target.
// Pitch is always within [-PitchLimit, PitchLimit]; Yaw is unbounded.
type Orientation struct {
	Yaw   float64 // radians about the vertical axis
	Pitch float64 // radians about the horizontal axis
}

// AngularVelocity holds the per-axis rotation rates captured while dragging.
type AngularVelocity struct {
	Yaw   float64
	Pitch float64
}

// PointerSample is the last recorded pointer position and the time it was captured.
type PointerSample struct {
	X, Y float64
	Time float64 // monotonic milliseconds
}

// RotationController turns pointer, touch and tilt input into a yaw/pitch
// orientation with flick momentum and idle auto-rotation. It never touches
// the target itself; the host applies Orientation after each Tick.
//
// All timestamps are monotonic milliseconds supplied by the host. Tick must be
// called once per rendered frame with non-decreasing timestamps.
type RotationController interface {
	// OnDragStart begins a drag at the given pointer position.
	// Resets angular velocity, cancels a running reset and records the interaction time.
	//
	// Parameters:
	//   - x, y: pointer position in screen pixels
	//   - now: current monotonic time in milliseconds
	OnDragStart(x, y, now float64)

	// OnDragMove rotates by the pointer delta since the last sample and records
	// the instantaneous angular velocity. Ignored unless dragging.
	//
	// Parameters:
	//   - x, y: pointer position in screen pixels
	//   - now: current monotonic time in milliseconds
	OnDragMove(x, y, now float64)

	// OnDragEnd releases the drag. Angular velocity is kept so the target
	// continues to spin with decaying momentum.
	OnDragEnd()

	// OnOrientationEvent applies an absolute device tilt. Beta drives pitch and
	// gamma drives yaw, each converted to radians and divided by the orientation
	// damping. Alpha is accepted for parity with device orientation events and
	// is unused. The event is ignored if beta or gamma is nil.
	//
	// Parameters:
	//   - alpha, beta, gamma: device orientation angles in degrees, possibly nil
	OnOrientationEvent(alpha, beta, gamma *float64)

	// PointAt sets the orientation absolutely, as when the target follows a hovered cursor.
	// Pitch is clamped, velocity is cleared, a running reset is cancelled and the call
	// counts as an interaction. It is ignored while a drag is in progress.
	//
	// Parameters:
	//   - yaw, pitch: orientation in radians
	//   - now: current monotonic time in milliseconds
	PointAt(yaw, pitch, now float64)

	// Reset starts an eased return to the home orientation.
	// Angular velocity is cleared. A drag start cancels the reset.
	//
	// Parameters:
	//   - now: current monotonic time in milliseconds
	Reset(now float64)

	// Tick advances momentum, reset or auto-rotation by one frame.
	//
	// Parameters:
	//   - now: current monotonic time in milliseconds
	//
	// Returns:
	//   - Orientation: the orientation to apply to the target this frame
	Tick(now float64) Orientation

	// Orientation returns the current orientation without advancing it.
	Orientation() Orientation

	// AngularVelocity returns the current angular velocity.
	AngularVelocity() AngularVelocity

	// State returns the current interaction state.
	State() InteractionState

	// LastInteraction returns the time of the most recent drag start, drag move
	// or reset frame in milliseconds.
	LastInteraction() float64

	// Resetting reports whether a reset animation is in progress.
	Resetting() bool

	// Sensitivity returns radians of rotation per pixel of pointer travel.
	Sensitivity() float64

	// Friction returns the per-tick velocity decay factor.
	Friction() float64

	// IdleTimeout returns the milliseconds of inactivity before auto-rotation.
	IdleTimeout() float64

	// AutoRotateRate returns the radians of yaw added per tick during auto-rotation.
	AutoRotateRate() float64

	// PitchLimit returns the symmetric pitch bound in radians.
	PitchLimit() float64

	// VelocityEpsilon returns the magnitude below which a velocity component snaps to zero.
	VelocityEpsilon() float64

	// Home returns the orientation Reset returns to.
	Home() Orientation
}
