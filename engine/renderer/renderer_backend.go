package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the display refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// String returns the config spelling of the mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return "unknown"
	}
}

// ParsePresentMode parses "vsync" or "uncapped".
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - PresentMode: the parsed mode (VSync when unrecognised)
//   - bool: false if s was not recognised
func ParsePresentMode(s string) (PresentMode, bool) {
	switch s {
	case "vsync", "":
		return PresentModeVSync, true
	case "uncapped":
		return PresentModeUncapped, true
	default:
		return PresentModeVSync, false
	}
}

// RendererBackend is the graphics API behind a Presenter.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain for the given pixel size.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	//   - mode: the present mode
	//
	// Returns:
	//   - error: error if the surface cannot be configured
	ConfigureSurface(width, height int, mode PresentMode) error

	// ClearAndPresent acquires the next surface image, clears it to the
	// colour and presents it.
	//
	// Parameters:
	//   - r, g, b: clear colour in [0, 1]
	//
	// Returns:
	//   - error: error if the frame could not be acquired or submitted
	ClearAndPresent(r, g, b float64) error

	// Release frees every GPU resource held by the backend.
	Release()
}
