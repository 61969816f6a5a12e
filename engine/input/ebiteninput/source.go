// Package ebiteninput polls ebiten mouse, touch and gamepad state into a
// rotation controller.
package ebiteninput

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Handler is the union of drag and tilt receivers.
type Handler interface {
	input.DragHandler
	input.TiltHandler
}

// Source reads pointer and gamepad state once per ebiten Update.
type Source struct {
	handler  Handler
	tracker  *input.Tracker
	touchIDs []ebiten.TouchID
	padIDs   []ebiten.GamepadID
	tilting  bool
}

// NewSource creates a Source feeding handler.
//
// Parameters:
//   - handler: receiver for drag and tilt input, typically a rotation.RotationController
//
// Returns:
//   - *Source: the input source
func NewSource(handler Handler) *Source {
	return &Source{
		handler: handler,
		tracker: input.NewTracker(handler),
	}
}

// Poll samples the current device state. Call it from ebiten's Game.Update.
// The first active touch wins over the mouse; the mouse is used when no
// finger is down.
//
// Parameters:
//   - now: monotonic time in milliseconds
func (s *Source) Poll(now float64) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		s.tracker.Sample(true, float64(tx), float64(ty), now)
	} else {
		mx, my := ebiten.CursorPosition()
		s.tracker.Sample(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), float64(mx), float64(my), now)
	}

	if s.tracker.Down() {
		return
	}
	s.pollStick()
}

// pollStick forwards the first standard gamepad's left stick as a tilt.
// Releasing the stick sends one centred event so the car settles back to zero.
func (s *Source) pollStick() {
	s.padIDs = ebiten.AppendGamepadIDs(s.padIDs[:0])
	if len(s.padIDs) == 0 {
		return
	}
	id := s.padIDs[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}

	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	beta, gamma, ok := input.TiltFromStick(x, y)
	if !ok {
		if s.tilting {
			s.tilting = false
			zero := 0.0
			s.handler.OnOrientationEvent(nil, &zero, &zero)
		}
		return
	}
	s.tilting = true
	s.handler.OnOrientationEvent(nil, &beta, &gamma)
}

// Dragging reports whether a mouse or touch drag is in progress.
func (s *Source) Dragging() bool {
	return s.tracker.Down()
}
