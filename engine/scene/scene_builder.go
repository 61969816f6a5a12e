package scene

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithTarget sets the object the controller's orientation is applied to.
//
// Parameters:
//   - target: the showcase object, or nil for none
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTarget(target game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.target = target
	}
}

// WithComputeWorkers sets the number of worker goroutines used for per-part
// matrix prep. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithLogger sets the scene's logger. A nil logger is ignored.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(l logger.Logger) SceneBuilderOption {
	return func(s *scene) {
		if l != nil {
			s.log = l
		}
	}
}
