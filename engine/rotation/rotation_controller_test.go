package rotation

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tolerance = 1e-12

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func ptr(v float64) *float64 {
	return &v
}

func TestNewRotationController_Defaults(t *testing.T) {
	rc := NewRotationController()

	if rc.State() != StateIdle {
		t.Errorf("State() = %v, want idle", rc.State())
	}
	if o := rc.Orientation(); o != (Orientation{}) {
		t.Errorf("Orientation() = %+v, want zero", o)
	}
	if v := rc.AngularVelocity(); v != (AngularVelocity{}) {
		t.Errorf("AngularVelocity() = %+v, want zero", v)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sensitivity", rc.Sensitivity(), DefaultSensitivity},
		{"friction", rc.Friction(), 0.95},
		{"idle timeout", rc.IdleTimeout(), 3000},
		{"auto-rotate rate", rc.AutoRotateRate(), DefaultAutoRotateRate},
		{"pitch limit", rc.PitchLimit(), math.Pi / 3},
		{"velocity epsilon", rc.VelocityEpsilon(), 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNewRotationController_ClampsInitialPitch(t *testing.T) {
	rc := NewRotationController(
		WithInitialOrientation(1, 2),
		WithHome(0, -2),
	)
	if got := rc.Orientation().Pitch; got != math.Pi/3 {
		t.Errorf("initial pitch = %v, want %v", got, math.Pi/3)
	}
	if got := rc.Home().Pitch; got != -math.Pi/3 {
		t.Errorf("home pitch = %v, want %v", got, -math.Pi/3)
	}
}

func TestOnDragStart(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(10, 10, 0)
	rc.OnDragMove(60, 10, 50)
	rc.OnDragEnd()

	rc.OnDragStart(100, 200, 500)

	if rc.State() != StateDragging {
		t.Errorf("State() = %v, want dragging", rc.State())
	}
	if v := rc.AngularVelocity(); v != (AngularVelocity{}) {
		t.Errorf("velocity after drag start = %+v, want zero", v)
	}
	if rc.LastInteraction() != 500 {
		t.Errorf("LastInteraction() = %v, want 500", rc.LastInteraction())
	}
}

// Scenario A: a 50px horizontal drag over 100ms.
func TestOnDragMove_HorizontalDrag(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(100, 100, 0)
	rc.OnDragMove(150, 100, 100)

	s := rc.Sensitivity()
	o := rc.Orientation()
	if o.Yaw != 50*s {
		t.Errorf("yaw = %v, want %v", o.Yaw, 50*s)
	}
	if o.Pitch != 0 {
		t.Errorf("pitch = %v, want 0", o.Pitch)
	}
	v := rc.AngularVelocity()
	if v.Yaw != 50*s/100 {
		t.Errorf("velocity yaw = %v, want %v", v.Yaw, 50*s/100)
	}
	if v.Pitch != 0 {
		t.Errorf("velocity pitch = %v, want 0", v.Pitch)
	}
	if rc.LastInteraction() != 100 {
		t.Errorf("LastInteraction() = %v, want 100", rc.LastInteraction())
	}
}

func TestOnDragMove_VerticalDrivesPitch(t *testing.T) {
	rc := NewRotationController(WithSensitivity(0.01))
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(0, 20, 10)

	o := rc.Orientation()
	if o.Yaw != 0 {
		t.Errorf("yaw = %v, want 0", o.Yaw)
	}
	if !approx(o.Pitch, 0.2) {
		t.Errorf("pitch = %v, want 0.2", o.Pitch)
	}
	if !approx(rc.AngularVelocity().Pitch, 0.02) {
		t.Errorf("velocity pitch = %v, want 0.02", rc.AngularVelocity().Pitch)
	}
}

func TestOnDragMove_IgnoredWhenIdle(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragMove(500, 500, 10)

	if o := rc.Orientation(); o != (Orientation{}) {
		t.Errorf("orientation = %+v, want zero", o)
	}
	if rc.LastInteraction() != 0 {
		t.Errorf("LastInteraction() = %v, want 0", rc.LastInteraction())
	}
}

func TestOnDragMove_ZeroDeltaTimeIsFloored(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 100)
	rc.OnDragMove(10, 0, 100)

	v := rc.AngularVelocity()
	if math.IsInf(v.Yaw, 0) || math.IsNaN(v.Yaw) {
		t.Fatalf("velocity yaw = %v, want finite", v.Yaw)
	}
	if !approx(v.Yaw, 10*DefaultSensitivity/DefaultMinDeltaTime) {
		t.Errorf("velocity yaw = %v, want %v", v.Yaw, 10*DefaultSensitivity/DefaultMinDeltaTime)
	}
}

// Scenario B: accumulated deltas past pi/2 clamp to exactly pi/3.
func TestOnDragMove_PitchClamps(t *testing.T) {
	rc := NewRotationController(WithSensitivity(0.01))
	rc.OnDragStart(0, 0, 0)

	// 10 moves of 20px at 0.01 rad/px accumulate to 2 rad (> pi/2).
	for i := 1; i <= 10; i++ {
		rc.OnDragMove(0, float64(i*20), float64(i*16))
	}
	if got := rc.Orientation().Pitch; got != math.Pi/3 {
		t.Errorf("pitch = %v, want exactly %v", got, math.Pi/3)
	}

	for i := 1; i <= 30; i++ {
		rc.OnDragMove(0, 200-float64(i*20), 160+float64(i*16))
	}
	if got := rc.Orientation().Pitch; got != -math.Pi/3 {
		t.Errorf("pitch = %v, want exactly %v", got, -math.Pi/3)
	}
}

func TestPitchInvariant_RandomDrags(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for run := 0; run < 50; run++ {
		rc := NewRotationController(WithSensitivity(r.Float64() * 0.05))
		limit := rc.PitchLimit()
		now := 0.0
		x, y := 0.0, 0.0
		rc.OnDragStart(x, y, now)

		for step := 0; step < 200; step++ {
			now += r.Float64() * 32
			x += (r.Float64() - 0.5) * 400
			y += (r.Float64() - 0.5) * 400

			switch r.IntN(10) {
			case 0:
				rc.OnDragEnd()
			case 1:
				rc.OnDragStart(x, y, now)
			default:
				rc.OnDragMove(x, y, now)
			}
			rc.Tick(now)

			if p := rc.Orientation().Pitch; p < -limit || p > limit {
				t.Fatalf("run %d step %d: pitch %v outside [%v, %v]", run, step, p, -limit, limit)
			}
		}
	}
}

func TestOnDragEnd_KeepsVelocity(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(40, 20, 20)
	before := rc.AngularVelocity()

	rc.OnDragEnd()

	if rc.State() != StateIdle {
		t.Errorf("State() = %v, want idle", rc.State())
	}
	if rc.AngularVelocity() != before {
		t.Errorf("velocity = %+v, want %+v", rc.AngularVelocity(), before)
	}
}

func TestTick_DraggingDoesNotDecay(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(30, 0, 10)
	o := rc.Orientation()
	v := rc.AngularVelocity()

	for i := 0; i < 5; i++ {
		if got := rc.Tick(20 + float64(i)); got != o {
			t.Fatalf("tick %d: orientation = %+v, want %+v", i, got, o)
		}
	}
	if rc.AngularVelocity() != v {
		t.Errorf("velocity changed while dragging: %+v -> %+v", v, rc.AngularVelocity())
	}
}

// Scenario C: momentum decays by exactly the friction factor each tick and
// snaps to zero once below epsilon.
func TestTick_MomentumDecay(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	for i := 1; i <= 10; i++ {
		rc.OnDragMove(float64(i*12), float64(i*3), float64(i*20))
	}
	rc.OnDragEnd()

	v := rc.AngularVelocity()
	if v.Yaw == 0 || v.Pitch == 0 {
		t.Fatalf("expected non-zero release velocity, got %+v", v)
	}

	snapped := false
	now := 200.0
	for tick := 0; tick < 400; tick++ {
		prev := rc.AngularVelocity()
		prevO := rc.Orientation()
		now += 1
		o := rc.Tick(now)

		if !approx(o.Yaw, prevO.Yaw+prev.Yaw) {
			t.Fatalf("tick %d: yaw = %v, want %v", tick, o.Yaw, prevO.Yaw+prev.Yaw)
		}

		got := rc.AngularVelocity()
		for _, c := range []struct {
			name       string
			prev, next float64
		}{
			{"yaw", prev.Yaw, got.Yaw},
			{"pitch", prev.Pitch, got.Pitch},
		} {
			want := c.prev * 0.95
			if math.Abs(want) < 1e-4 {
				want = 0
			}
			if c.next != want {
				t.Fatalf("tick %d: %s velocity = %v, want %v", tick, c.name, c.next, want)
			}
		}
		if got == (AngularVelocity{}) {
			snapped = true
			break
		}
	}
	if !snapped {
		t.Fatal("velocity never reached zero")
	}

	// Quiescent: further ticks inside the idle window change nothing.
	o := rc.Orientation()
	for i := 0; i < 10; i++ {
		now++
		if got := rc.Tick(now); got != o {
			t.Fatalf("orientation drifted after quiescence: %+v -> %+v", o, got)
		}
	}
}

func TestTick_MomentumFiftyTicks(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(100, 0, 100)
	rc.OnDragMove(200, 0, 200)
	rc.OnDragEnd()

	initial := rc.AngularVelocity().Yaw
	want := initial
	for k := 1; k <= 50; k++ {
		rc.Tick(200 + float64(k)*16)
		want *= 0.95
		if math.Abs(want) < 1e-4 {
			want = 0
		}
		if got := rc.AngularVelocity().Yaw; got != want {
			t.Fatalf("tick %d: velocity yaw = %v, want %v", k, got, want)
		}
	}
	if !approx(want, initial*math.Pow(0.95, 50)) && want != 0 {
		t.Errorf("velocity after 50 ticks = %v, want %v", want, initial*math.Pow(0.95, 50))
	}
}

func TestTick_MomentumClampsPitch(t *testing.T) {
	rc := NewRotationController(WithSensitivity(0.02))
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(0, 50, 1)
	rc.OnDragEnd()

	for i := 0; i < 100; i++ {
		o := rc.Tick(float64(2 + i))
		if o.Pitch > math.Pi/3 {
			t.Fatalf("tick %d: pitch %v exceeds limit", i, o.Pitch)
		}
	}
	if got := rc.Orientation().Pitch; got != math.Pi/3 {
		t.Errorf("pitch = %v, want %v", got, math.Pi/3)
	}
}

func TestTick_AutoRotateAfterIdle(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(80, 30, 16)
	rc.OnDragEnd()

	velocity := rc.AngularVelocity()
	start := rc.Orientation()

	now := 16 + 3000.0 + 1
	for i := 1; i <= 20; i++ {
		o := rc.Tick(now)
		if !approx(o.Yaw, start.Yaw+float64(i)*DefaultAutoRotateRate) {
			t.Fatalf("tick %d: yaw = %v, want %v", i, o.Yaw, start.Yaw+float64(i)*DefaultAutoRotateRate)
		}
		if o.Pitch != start.Pitch {
			t.Fatalf("tick %d: pitch = %v, want unchanged %v", i, o.Pitch, start.Pitch)
		}
		now += 16
	}
	if rc.AngularVelocity() != velocity {
		t.Errorf("auto-rotation touched velocity: %+v -> %+v", velocity, rc.AngularVelocity())
	}
}

func TestTick_AutoRotateWaitsForTimeout(t *testing.T) {
	rc := NewRotationController()

	if o := rc.Tick(3000); o.Yaw != 0 {
		t.Errorf("yaw at exactly the timeout = %v, want 0", o.Yaw)
	}
	if o := rc.Tick(3001); o.Yaw != DefaultAutoRotateRate {
		t.Errorf("yaw after timeout = %v, want %v", o.Yaw, DefaultAutoRotateRate)
	}
}

func TestTick_SameTimestampRepeated(t *testing.T) {
	rc := NewRotationController()
	const n = 7

	for i := 0; i < n; i++ {
		rc.Tick(10_000)
	}
	if got := rc.Orientation().Yaw; !approx(got, n*DefaultAutoRotateRate) {
		t.Errorf("yaw after %d ticks at the same time = %v, want %v", n, got, n*DefaultAutoRotateRate)
	}
}

// Scenario D: absolute tilt mapping.
func TestOnOrientationEvent(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(10, 10, 10)
	rc.OnDragEnd()
	velocity := rc.AngularVelocity()

	rc.OnOrientationEvent(ptr(45), ptr(30), ptr(-60))

	o := rc.Orientation()
	if !approx(o.Pitch, common.DegToRad(30)/7.5) {
		t.Errorf("pitch = %v, want %v", o.Pitch, common.DegToRad(30)/7.5)
	}
	if !approx(o.Yaw, common.DegToRad(-60)/7.5) {
		t.Errorf("yaw = %v, want %v", o.Yaw, common.DegToRad(-60)/7.5)
	}
	if rc.AngularVelocity() != velocity {
		t.Errorf("velocity changed: %+v -> %+v", velocity, rc.AngularVelocity())
	}
	if rc.LastInteraction() != 10 {
		t.Errorf("LastInteraction() = %v, want 10", rc.LastInteraction())
	}
}

func TestOnOrientationEvent_NilIgnored(t *testing.T) {
	tests := []struct {
		name        string
		beta, gamma *float64
	}{
		{"nil beta", nil, ptr(10)},
		{"nil gamma", ptr(10), nil},
		{"both nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRotationController(WithInitialOrientation(0.3, 0.2))
			rc.OnOrientationEvent(nil, tt.beta, tt.gamma)
			if o := rc.Orientation(); o != (Orientation{Yaw: 0.3, Pitch: 0.2}) {
				t.Errorf("orientation = %+v, want unchanged", o)
			}
		})
	}
}

func TestOnOrientationEvent_ClampsPitch(t *testing.T) {
	rc := NewRotationController(WithOrientationDamping(1))
	rc.OnOrientationEvent(nil, ptr(170), ptr(0))

	if got := rc.Orientation().Pitch; got != math.Pi/3 {
		t.Errorf("pitch = %v, want %v", got, math.Pi/3)
	}
}

func TestReset_EasesToHome(t *testing.T) {
	rc := NewRotationController(
		WithHome(-math.Pi/4, math.Pi/12),
		WithResetDuration(400),
	)
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(300, -40, 50)
	rc.OnDragEnd()

	rc.Reset(100)
	if !rc.Resetting() {
		t.Fatal("Resetting() = false after Reset")
	}
	if v := rc.AngularVelocity(); v != (AngularVelocity{}) {
		t.Errorf("velocity = %+v, want zero during reset", v)
	}

	mid := rc.Tick(300)
	home := rc.Home()
	if mid == home {
		t.Error("reached home halfway through the reset")
	}
	if rc.LastInteraction() != 300 {
		t.Errorf("LastInteraction() = %v, want 300", rc.LastInteraction())
	}

	final := rc.Tick(500)
	if final != home {
		t.Errorf("orientation after reset = %+v, want %+v", final, home)
	}
	if rc.Resetting() {
		t.Error("Resetting() = true after the duration elapsed")
	}

	// Auto-rotation waits a full timeout after the reset finished.
	if o := rc.Tick(500 + 3000); o != home {
		t.Errorf("orientation = %+v, want still home", o)
	}
	if o := rc.Tick(500 + 3001); o.Yaw != home.Yaw+DefaultAutoRotateRate {
		t.Errorf("yaw = %v, want auto-rotation to resume", o.Yaw)
	}
}

func TestPointAt(t *testing.T) {
	rc := NewRotationController(WithHome(1, 0))
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(40, 0, 10)
	rc.OnDragEnd()
	rc.Reset(20)

	rc.PointAt(0.5, math.Pi/2, 40)

	if o := rc.Orientation(); o != (Orientation{Yaw: 0.5, Pitch: math.Pi / 3}) {
		t.Errorf("orientation = %+v, want yaw 0.5 and clamped pitch", o)
	}
	if v := rc.AngularVelocity(); v != (AngularVelocity{}) {
		t.Errorf("velocity = %+v, want zero", v)
	}
	if rc.Resetting() {
		t.Error("PointAt did not cancel the reset")
	}
	if rc.LastInteraction() != 40 {
		t.Errorf("LastInteraction() = %v, want 40", rc.LastInteraction())
	}
	if o := rc.Tick(41); o != (Orientation{Yaw: 0.5, Pitch: math.Pi / 3}) {
		t.Errorf("tick moved a pointed orientation to %+v", o)
	}
}

func TestPointAt_IgnoredWhileDragging(t *testing.T) {
	rc := NewRotationController()
	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(20, 0, 10)
	before := rc.Orientation()

	rc.PointAt(1, 1, 20)

	if rc.Orientation() != before {
		t.Errorf("orientation = %+v, want %+v", rc.Orientation(), before)
	}
	if rc.LastInteraction() != 10 {
		t.Errorf("LastInteraction() = %v, want 10", rc.LastInteraction())
	}
}

func TestReset_TakesShortWayAfterLongSpin(t *testing.T) {
	rc := NewRotationController(
		WithHome(-math.Pi/4, math.Pi/12),
		WithAutoRotateRate(0.5),
		WithResetDuration(800),
	)
	now := 3001.0
	for range 2160 {
		rc.Tick(now)
		now += 16
	}
	before := rc.Orientation().Yaw
	if before < 1000 {
		t.Fatalf("yaw after spinning = %v, want a large accumulated yaw", before)
	}

	rc.Reset(now)
	prev := before
	home := rc.Home()
	for i := range 60 {
		now += 16
		o := rc.Tick(now)
		step := math.Abs(math.Remainder(o.Yaw-prev, 2*math.Pi))
		if i > 0 {
			step = math.Abs(o.Yaw - prev)
		}
		if step >= math.Pi {
			t.Fatalf("frame %d moved yaw by %v, want under pi", i, step)
		}
		prev = o.Yaw
	}
	if rc.Orientation() != home {
		t.Errorf("orientation after reset = %+v, want %+v", rc.Orientation(), home)
	}
	if rc.Resetting() {
		t.Error("Resetting() = true after the duration elapsed")
	}
}

func TestReset_CancelledByDrag(t *testing.T) {
	rc := NewRotationController(WithHome(1, 0), WithResetDuration(1000))
	rc.Reset(0)
	rc.Tick(100)

	rc.OnDragStart(5, 5, 150)
	if rc.Resetting() {
		t.Error("Resetting() = true after drag start")
	}
	o := rc.Orientation()
	rc.OnDragEnd()
	if got := rc.Tick(2000); got != o {
		t.Errorf("orientation moved after cancelled reset: %+v -> %+v", o, got)
	}
}

func TestLogging_StateTransitions(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	rc := NewRotationController(WithLogger(logger.NewFromZap(zap.New(core))))

	rc.OnDragStart(0, 0, 0)
	rc.OnDragMove(10, 0, 10)
	rc.OnDragEnd()
	rc.Tick(5000)
	rc.Tick(5016)

	want := []string{"drag started", "drag ended", "auto-rotation engaged"}
	got := recorded.All()
	if len(got) != len(want) {
		t.Fatalf("got %d log entries, want %d", len(got), len(want))
	}
	for i, msg := range want {
		if got[i].Message != msg {
			t.Errorf("entry %d = %q, want %q", i, got[i].Message, msg)
		}
	}
}

func TestInteractionState_String(t *testing.T) {
	tests := []struct {
		state InteractionState
		want  string
	}{
		{StateIdle, "idle"},
		{StateDragging, "dragging"},
		{InteractionState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
