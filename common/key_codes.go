package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII), resets the car to its home pose
	KeyP     = 80  // P key (ASCII), toggles the profiler
	KeyV     = 86  // V key (ASCII), switches between vsync and uncapped presentation
	KeyF     = 70  // F key (ASCII), toggles follow-cursor mode
	KeySpace = 32  // Spacebar (ASCII), pauses the showroom scene
	KeyEsc   = 256 // Escape key (GLFW), closes the window
)
