package input

import (
	"math"
	"reflect"
	"testing"
)

type recordingHandler struct {
	calls []string
	xs    []float64
}

func (r *recordingHandler) OnDragStart(x, _, _ float64) {
	r.calls = append(r.calls, "start")
	r.xs = append(r.xs, x)
}

func (r *recordingHandler) OnDragMove(x, _, _ float64) {
	r.calls = append(r.calls, "move")
	r.xs = append(r.xs, x)
}

func (r *recordingHandler) OnDragEnd() {
	r.calls = append(r.calls, "end")
}

func TestTracker_Sample(t *testing.T) {
	type sample struct {
		pressed bool
		x       float64
	}
	tests := []struct {
		name    string
		samples []sample
		want    []string
	}{
		{"release without press", []sample{{false, 0}, {false, 5}}, nil},
		{"press only", []sample{{true, 1}}, []string{"start"}},
		{"press move release", []sample{{true, 1}, {true, 4}, {false, 4}}, []string{"start", "move", "end"}},
		{"stationary hold", []sample{{true, 1}, {true, 1}, {true, 1}, {false, 1}}, []string{"start", "end"}},
		{"two gestures", []sample{{true, 1}, {false, 1}, {true, 9}, {true, 10}, {false, 10}}, []string{"start", "end", "start", "move", "end"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{}
			tr := NewTracker(h)
			for i, s := range tt.samples {
				tr.Sample(s.pressed, s.x, 0, float64(i*16))
			}
			if !reflect.DeepEqual(h.calls, tt.want) {
				t.Errorf("calls = %v, want %v", h.calls, tt.want)
			}
		})
	}
}

func TestTracker_Down(t *testing.T) {
	tr := NewTracker(&recordingHandler{})
	if tr.Down() {
		t.Fatal("Down() = true before any sample")
	}
	tr.Sample(true, 0, 0, 0)
	if !tr.Down() {
		t.Error("Down() = false while held")
	}
	tr.Sample(false, 0, 0, 16)
	if tr.Down() {
		t.Error("Down() = true after release")
	}
}

func TestTracker_ForwardsPositions(t *testing.T) {
	h := &recordingHandler{}
	tr := NewTracker(h)
	tr.Sample(true, 3, 0, 0)
	tr.Sample(true, 7, 0, 16)
	tr.Sample(true, 12, 0, 32)

	if want := []float64{3, 7, 12}; !reflect.DeepEqual(h.xs, want) {
		t.Errorf("positions = %v, want %v", h.xs, want)
	}
}

func TestTiltFromStick(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		beta      float64
		gamma     float64
		wantValid bool
	}{
		{"centred", 0, 0, 0, 0, false},
		{"inside dead zone", 0.1, -0.1, 0, 0, false},
		{"full right", 1, 0, 0, 90, true},
		{"full up", 0, -1, -90, 0, true},
		{"overdriven", 2, 2, 90, 90, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beta, gamma, ok := TiltFromStick(tt.x, tt.y)
			if ok != tt.wantValid {
				t.Fatalf("ok = %v, want %v", ok, tt.wantValid)
			}
			if beta != tt.beta || gamma != tt.gamma {
				t.Errorf("TiltFromStick(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, beta, gamma, tt.beta, tt.gamma)
			}
		})
	}
}

func TestTiltFromStick_Continuous(t *testing.T) {
	_, gamma, ok := TiltFromStick(StickDeadZone+0.0001, 0)
	if !ok {
		t.Fatal("expected deflection just past the dead zone to register")
	}
	if gamma <= 0 || gamma > 0.1 {
		t.Errorf("gamma = %v, want a small positive tilt", gamma)
	}
}

func TestCursorOrientation(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		w, h       float64
		yaw, pitch float64
		ok         bool
	}{
		{"centre", 400, 300, 800, 600, 0, 0, true},
		{"top left", 0, 0, 800, 600, -math.Pi / 2, -math.Pi / 2, true},
		{"bottom right", 800, 600, 800, 600, math.Pi / 2, math.Pi / 2, true},
		{"quarter right", 600, 300, 800, 600, math.Pi / 4, 0, true},
		{"outside clamps", -100, 900, 800, 600, -math.Pi / 2, math.Pi / 2, true},
		{"zero width", 10, 10, 0, 600, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch, ok := CursorOrientation(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.ok || yaw != tt.yaw || pitch != tt.pitch {
				t.Errorf("CursorOrientation(%v, %v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, tt.y, tt.w, tt.h, yaw, pitch, ok, tt.yaw, tt.pitch, tt.ok)
			}
		})
	}
}
