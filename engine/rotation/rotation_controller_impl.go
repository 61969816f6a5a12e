package rotation

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default tunables.
const (
	DefaultSensitivity        = 0.005
	DefaultFriction           = 0.95
	DefaultIdleTimeout        = 3000.0
	DefaultAutoRotateRate     = 0.005
	DefaultPitchLimit         = math.Pi / 3
	DefaultVelocityEpsilon    = 1e-4
	DefaultOrientationDamping = 7.5
	DefaultMinDeltaTime       = 1.0
	DefaultResetDuration      = 800.0
)

// resetAnim eases the yaw and pitch offsets from home down to zero.
// Tween time is in milliseconds.
type resetAnim struct {
	yaw   *gween.Tween
	pitch *gween.Tween
	last  float64
}

// rotationControllerImpl is the single implementation of RotationController.
// Input callbacks and Tick may arrive from different goroutines (window thread
// and render loop), so every method takes the mutex and runs to completion.
type rotationControllerImpl struct {
	mu  *sync.Mutex
	log logger.Logger

	state           InteractionState
	pointer         PointerSample
	velocity        AngularVelocity
	orientation     Orientation
	lastInteraction float64
	autoRotating    bool

	sensitivity        float64
	friction           float64
	idleTimeout        float64
	autoRotateRate     float64
	pitchLimit         float64
	velocityEpsilon    float64
	orientationDamping float64
	minDeltaTime       float64

	home          Orientation
	resetDuration float64
	reset         *resetAnim
}

// Compile-time interface compliance check
var _ RotationController = &rotationControllerImpl{}

// NewRotationController creates a controller at the zero orientation, idle,
// with the default tunables.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - RotationController: the newly created controller
func NewRotationController(options ...RotationControllerOption) RotationController {
	rc := &rotationControllerImpl{
		mu:  &sync.Mutex{},
		log: logger.NewNop(),

		sensitivity:        DefaultSensitivity,
		friction:           DefaultFriction,
		idleTimeout:        DefaultIdleTimeout,
		autoRotateRate:     DefaultAutoRotateRate,
		pitchLimit:         DefaultPitchLimit,
		velocityEpsilon:    DefaultVelocityEpsilon,
		orientationDamping: DefaultOrientationDamping,
		minDeltaTime:       DefaultMinDeltaTime,
		resetDuration:      DefaultResetDuration,
	}

	for _, option := range options {
		option(rc)
	}

	if rc.minDeltaTime <= 0 {
		rc.minDeltaTime = DefaultMinDeltaTime
	}
	if rc.orientationDamping == 0 {
		rc.orientationDamping = DefaultOrientationDamping
	}
	rc.orientation.Pitch = rc.clampPitch(rc.orientation.Pitch)
	rc.home.Pitch = rc.clampPitch(rc.home.Pitch)

	return rc
}

// --- internal helpers ---

// clampPitch bounds pitch to [-pitchLimit, pitchLimit].
func (rc *rotationControllerImpl) clampPitch(pitch float64) float64 {
	return common.Clamp(pitch, -rc.pitchLimit, rc.pitchLimit)
}

// snap zeroes a velocity component whose magnitude has fallen below epsilon.
func (rc *rotationControllerImpl) snap(v float64) float64 {
	if math.Abs(v) < rc.velocityEpsilon {
		return 0
	}
	return v
}

// stepReset advances the reset tweens to now. Caller must hold the mutex.
func (rc *rotationControllerImpl) stepReset(now float64) {
	dt := max(now-rc.reset.last, 0)
	rc.reset.last = now

	yaw, yawDone := rc.reset.yaw.Update(float32(dt))
	pitch, pitchDone := rc.reset.pitch.Update(float32(dt))
	rc.lastInteraction = now

	if yawDone && pitchDone {
		rc.orientation = rc.home
		rc.reset = nil
		rc.log.Debug("reset finished", logger.F("yaw", rc.orientation.Yaw), logger.F("pitch", rc.orientation.Pitch))
		return
	}
	rc.orientation.Yaw = rc.home.Yaw + float64(yaw)
	rc.orientation.Pitch = rc.clampPitch(rc.home.Pitch + float64(pitch))
}

// --- input ---

func (rc *rotationControllerImpl) OnDragStart(x, y, now float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.reset != nil {
		rc.reset = nil
		rc.log.Debug("reset cancelled by drag")
	}
	rc.state = StateDragging
	rc.pointer = PointerSample{X: x, Y: y, Time: now}
	rc.velocity = AngularVelocity{}
	rc.lastInteraction = now
	rc.autoRotating = false
	rc.log.Debug("drag started", logger.F("x", x), logger.F("y", y))
}

func (rc *rotationControllerImpl) OnDragMove(x, y, now float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state != StateDragging {
		return
	}

	dx := x - rc.pointer.X
	dy := y - rc.pointer.Y
	dt := max(now-rc.pointer.Time, rc.minDeltaTime)

	// Vertical travel drives pitch, horizontal travel drives yaw.
	rc.velocity = AngularVelocity{
		Yaw:   dx * rc.sensitivity / dt,
		Pitch: dy * rc.sensitivity / dt,
	}
	rc.orientation.Yaw += dx * rc.sensitivity
	rc.orientation.Pitch = rc.clampPitch(rc.orientation.Pitch + dy*rc.sensitivity)

	rc.pointer = PointerSample{X: x, Y: y, Time: now}
	rc.lastInteraction = now
}

func (rc *rotationControllerImpl) OnDragEnd() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state == StateDragging {
		rc.log.Debug("drag ended",
			logger.F("velocity_yaw", rc.velocity.Yaw),
			logger.F("velocity_pitch", rc.velocity.Pitch),
		)
	}
	rc.state = StateIdle
}

func (rc *rotationControllerImpl) OnOrientationEvent(_, beta, gamma *float64) {
	if beta == nil || gamma == nil {
		return
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.orientation.Pitch = rc.clampPitch(common.DegToRad(*beta) / rc.orientationDamping)
	rc.orientation.Yaw = common.DegToRad(*gamma) / rc.orientationDamping
}

func (rc *rotationControllerImpl) PointAt(yaw, pitch, now float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.state == StateDragging {
		return
	}
	rc.reset = nil
	rc.autoRotating = false
	rc.velocity = AngularVelocity{}
	rc.orientation = Orientation{Yaw: yaw, Pitch: rc.clampPitch(pitch)}
	rc.lastInteraction = now
}

func (rc *rotationControllerImpl) Reset(now float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.velocity = AngularVelocity{}
	rc.lastInteraction = now
	rc.autoRotating = false

	// Auto-rotation leaves yaw unbounded; only the short way back to home is eased.
	yawOffset := math.Remainder(rc.orientation.Yaw-rc.home.Yaw, 2*math.Pi)
	pitchOffset := rc.orientation.Pitch - rc.home.Pitch
	rc.orientation.Yaw = rc.home.Yaw + yawOffset

	rc.reset = &resetAnim{
		yaw:   gween.New(float32(yawOffset), 0, float32(rc.resetDuration), ease.OutCubic),
		pitch: gween.New(float32(pitchOffset), 0, float32(rc.resetDuration), ease.OutCubic),
		last:  now,
	}
	rc.log.Debug("reset started", logger.F("duration_ms", rc.resetDuration))
}

// --- per frame ---

func (rc *rotationControllerImpl) Tick(now float64) Orientation {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	// Drag moves already wrote the orientation; nothing decays while held.
	if rc.state == StateDragging {
		return rc.orientation
	}

	if rc.reset != nil {
		rc.stepReset(now)
		return rc.orientation
	}

	if now-rc.lastInteraction > rc.idleTimeout {
		if !rc.autoRotating {
			rc.autoRotating = true
			rc.log.Debug("auto-rotation engaged", logger.F("idle_ms", now-rc.lastInteraction))
		}
		rc.orientation.Yaw += rc.autoRotateRate
		return rc.orientation
	}

	rc.orientation.Yaw += rc.velocity.Yaw
	rc.orientation.Pitch += rc.velocity.Pitch
	rc.velocity.Yaw *= rc.friction
	rc.velocity.Pitch *= rc.friction
	rc.orientation.Pitch = rc.clampPitch(rc.orientation.Pitch)
	rc.velocity.Yaw = rc.snap(rc.velocity.Yaw)
	rc.velocity.Pitch = rc.snap(rc.velocity.Pitch)

	return rc.orientation
}

// --- accessors ---

func (rc *rotationControllerImpl) Orientation() Orientation {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.orientation
}

func (rc *rotationControllerImpl) AngularVelocity() AngularVelocity {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.velocity
}

func (rc *rotationControllerImpl) State() InteractionState {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.state
}

func (rc *rotationControllerImpl) LastInteraction() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.lastInteraction
}

func (rc *rotationControllerImpl) Resetting() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.reset != nil
}

func (rc *rotationControllerImpl) Sensitivity() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.sensitivity
}

func (rc *rotationControllerImpl) Friction() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.friction
}

func (rc *rotationControllerImpl) IdleTimeout() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.idleTimeout
}

func (rc *rotationControllerImpl) AutoRotateRate() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.autoRotateRate
}

func (rc *rotationControllerImpl) PitchLimit() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.pitchLimit
}

func (rc *rotationControllerImpl) VelocityEpsilon() float64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.velocityEpsilon
}

func (rc *rotationControllerImpl) Home() Orientation {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.home
}
