package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a desktop window that reports the pointer and keyboard events a showcase host
// turns into drags, resets and toggles.
// Every callback runs on the thread that calls ProcessMessages.
type Window interface {
	// SetResizeCallback installs the framebuffer resize handler.
	//
	// Parameters:
	//   - callback: receives the new framebuffer width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback installs the key press handler. Auto-repeat also lands here.
	//
	// Parameters:
	//   - callback: receives the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetPointerDownCallback installs the left-button press handler, where a drag begins.
	//
	// Parameters:
	//   - callback: receives the cursor position in window pixels
	SetPointerDownCallback(callback func(x, y float64))

	// SetPointerUpCallback installs the left-button release handler.
	// It fires once per press, either on release or when the cursor leaves the window.
	//
	// Parameters:
	//   - callback: receives the cursor position in window pixels
	SetPointerUpCallback(callback func(x, y float64))

	// SetMouseMoveCallback installs the cursor motion handler.
	//
	// Parameters:
	//   - callback: receives the cursor position in window pixels
	SetMouseMoveCallback(callback func(x, y float64))

	// SetCloseOnEscape toggles closing the window on Escape. On by default.
	SetCloseOnEscape(enabled bool)

	// SurfaceDescriptor returns the per-OS descriptor a WebGPU surface is created from,
	// or nil before the window exists.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// Close destroys the window.
	//
	// Returns:
	//   - error: if the window was never spawned
	Close() error

	// ProcessMessages pumps events until the window closes.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	minWidth, minHeight int
	maxWidth, maxHeight int

	// width and height track the framebuffer, not the requested window size.
	width, height int

	// internalWindow is the *glfwWindow once spawned.
	internalWindow any

	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onPointerDown func(x, y float64)
	onPointerUp   func(x, y float64)
	onMouseMove   func(x, y float64)

	pointerHeld   bool
	closeOnEscape bool
}

var _ Window = &engineWindow{}

// NewWindow spawns a window. Defaults are a 1280x720 "Oxy Showcase" window resizable
// between 320x240 and 3840x2160 that closes on Escape.
// The requested size is clamped into the size limits.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:         "Oxy Showcase",
		minWidth:      320,
		minHeight:     240,
		maxWidth:      3840,
		maxHeight:     2160,
		width:         1280,
		height:        720,
		closeOnEscape: true,
	}
	for _, opt := range options {
		opt(w)
	}
	w.width = common.Clamp(w.width, w.minWidth, w.maxWidth)
	w.height = common.Clamp(w.height, w.minHeight, w.maxHeight)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("spawn window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) { w.onKeyDown = callback }

func (w *engineWindow) SetPointerDownCallback(callback func(x, y float64)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(x, y float64)) { w.onPointerUp = callback }

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) { w.onMouseMove = callback }

func (w *engineWindow) SetCloseOnEscape(enabled bool) { w.closeOnEscape = enabled }

func (w *engineWindow) pointerDown(x, y float64) {
	w.pointerHeld = true
	if w.onPointerDown != nil {
		w.onPointerDown(x, y)
	}
}

// pointerUp forwards at most one release per press.
func (w *engineWindow) pointerUp(x, y float64) {
	if !w.pointerHeld {
		return
	}
	w.pointerHeld = false
	if w.onPointerUp != nil {
		w.onPointerUp(x, y)
	}
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool { return platformIsRunningCheck(w) }

func (w *engineWindow) Close() error { return platformCloseWindow(w) }

func (w *engineWindow) ProcessMessages() {
	for platformProcessMessages(w) {
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int { return w.width }

func (w *engineWindow) Height() int { return w.height }
