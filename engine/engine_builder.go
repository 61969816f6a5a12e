package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profiling.Store(enabled)
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler ticked once per rendered frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickPeriod = tickInterval(fps)
	}
}

// WithWindow sets the window the engine pumps and resizes against.
// Without a window the engine runs headless until Quit.
//
// Parameters:
//   - w: a pre-configured window, usually a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithPresenter sets the presenter that clears and presents each frame.
// It is configured to the window size at construction and on every resize.
//
// Parameters:
//   - p: the presenter, usually a renderer.Presenter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPresenter(p Presenter) EngineBuilderOption {
	return func(e *engine) {
		e.presenter = p
	}
}

// WithBackdrop sets the gradient whose colour the presenter clears to.
// The backdrop advances one step per rendered frame.
//
// Parameters:
//   - b: the backdrop
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackdrop(b *backdrop.Backdrop) EngineBuilderOption {
	return func(e *engine) {
		e.backdrop = b
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
//
// Parameters:
//   - key: the z-index determining update order (lower first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.minFrameTime = frameInterval(fps)
	}
}

// WithLogger sets the engine's logger. A nil logger is ignored.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l logger.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock replaces the wall clock behind Now.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		if now != nil {
			e.clock = now
		}
	}
}
