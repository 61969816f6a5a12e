package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNotConfigured is returned by a backend asked to present before ConfigureSurface.
var ErrNotConfigured = errors.New("renderer: surface not configured")

// Presenter clears the window surface to a single colour each frame.
// The showcase draws no meshes, so a frame is one clear pass.
type Presenter interface {
	// Configure sizes the surface. Call it once after creation and again on resize.
	// A zero width or height (minimised window) pauses presentation.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	//
	// Returns:
	//   - error: error if the backend rejects the configuration
	Configure(width, height int) error

	// Present clears the surface to the colour and presents it.
	// While the surface has no size the frame is skipped without error.
	//
	// Parameters:
	//   - r, g, b: clear colour in [0, 1]
	//
	// Returns:
	//   - error: a backend error
	Present(r, g, b float64) error

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Size returns the configured surface size.
	Size() (width, height int)

	// Frames returns how many frames have been presented.
	Frames() uint64

	// Release frees GPU resources. The Presenter must not be used afterwards.
	Release()
}

type presenter struct {
	mu      *sync.Mutex
	log     logger.Logger
	backend RendererBackend

	width       int
	height      int
	presentMode PresentMode
	frames      uint64

	forceFallbackAdapter bool
}

var _ Presenter = &presenter{}

// NewPresenter creates a webgpu-backed Presenter for a window surface.
// The surface is not configured until Configure is called.
//
// Parameters:
//   - surface: the window's surface descriptor (see window.Window.SurfaceDescriptor)
//   - options: functional options to configure the presenter
//
// Returns:
//   - Presenter: the presenter
//   - error: error if no adapter or device could be acquired
func NewPresenter(surface *wgpu.SurfaceDescriptor, options ...PresenterBuilderOption) (Presenter, error) {
	if surface == nil {
		return nil, errors.New("renderer: nil surface descriptor")
	}

	p := newPresenter(options...)
	backend, err := newWGPURendererBackend(surface, p.forceFallbackAdapter)
	if err != nil {
		return nil, fmt.Errorf("renderer: init webgpu: %w", err)
	}
	p.backend = backend
	p.log.Info("presenter ready", logger.F("present_mode", p.presentMode.String()))
	return p, nil
}

func newPresenter(options ...PresenterBuilderOption) *presenter {
	p := &presenter{
		mu:          &sync.Mutex{},
		log:         logger.NewNop(),
		presentMode: PresentModeVSync,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *presenter) Configure(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.width, p.height = max(width, 0), max(height, 0)
	if p.width == 0 || p.height == 0 {
		p.log.Debug("surface paused", logger.F("width", width), logger.F("height", height))
		return nil
	}
	if err := p.backend.ConfigureSurface(p.width, p.height, p.presentMode); err != nil {
		return fmt.Errorf("renderer: configure %dx%d: %w", p.width, p.height, err)
	}
	p.log.Debug("surface configured", logger.F("width", p.width), logger.F("height", p.height))
	return nil
}

func (p *presenter) Present(r, g, b float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.width == 0 || p.height == 0 {
		return nil
	}
	if err := p.backend.ClearAndPresent(r, g, b); err != nil {
		return err
	}
	p.frames++
	return nil
}

func (p *presenter) SetPresentMode(mode PresentMode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.presentMode = mode
	if p.width == 0 || p.height == 0 {
		return
	}
	if err := p.backend.ConfigureSurface(p.width, p.height, mode); err != nil {
		p.log.Error("present mode change failed", logger.F("mode", mode.String()), logger.F("error", err))
	}
}

func (p *presenter) Size() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

func (p *presenter) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

func (p *presenter) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.backend.Release()
	p.log.Info("presenter released", logger.F("frames", p.frames))
}
