package renderer

import "github.com/Carmen-Shannon/oxy-showcase/engine/logger"

// PresenterBuilderOption is a functional option applied to a presenter during construction via NewPresenter.
type PresenterBuilderOption func(*presenter)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - PresenterBuilderOption: a function that applies the present mode option
func WithPresentMode(mode PresentMode) PresenterBuilderOption {
	return func(p *presenter) {
		p.presentMode = mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD (SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - PresenterBuilderOption: a function that applies the option
func WithForceSoftwareRenderer(force bool) PresenterBuilderOption {
	return func(p *presenter) {
		p.forceFallbackAdapter = force
	}
}

// WithLogger sets the presenter's logger. A nil logger is ignored.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - PresenterBuilderOption: a function that applies the option
func WithLogger(l logger.Logger) PresenterBuilderOption {
	return func(p *presenter) {
		if l != nil {
			p.log = l
		}
	}
}
