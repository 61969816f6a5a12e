package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errNotSpawned = errors.New("window is not initialized")

// glfwWindow binds a GLFW window to the engineWindow that owns its callbacks.
type glfwWindow struct {
	owner   *engineWindow
	handle  *glfw.Window
	running bool
}

// newPlatformWindow initialises GLFW, opens a client-API-less window sized to the owner
// and routes its input events back into the owner.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	// GLFW must stay on the thread that initialised it.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	// WebGPU owns the surface, so no OpenGL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create glfw window: %w", err)
	}
	handle.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{owner: w, handle: handle, running: true}
	gw.bind()
	w.internalWindow = gw

	// High-DPI displays hand back a framebuffer larger than the requested window.
	w.width, w.height = handle.GetFramebufferSize()
	return nil
}

func (gw *glfwWindow) bind() {
	gw.handle.SetKeyCallback(gw.onKey)
	gw.handle.SetMouseButtonCallback(gw.onMouseButton)
	gw.handle.SetCursorEnterCallback(gw.onCursorEnter)
	gw.handle.SetCursorPosCallback(gw.onCursorPos)
	gw.handle.SetFramebufferSizeCallback(gw.onFramebufferSize)
}

func (gw *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w := gw.owner
	code := uint32(key)
	if code == common.KeyEsc && action == glfw.Press && w.closeOnEscape {
		gw.stop()
		return
	}
	if action == glfw.Release {
		return
	}
	if w.onKeyDown != nil {
		w.onKeyDown(code)
	}
}

// onMouseButton turns the left button into pointer down/up. Other buttons are ignored.
func (gw *glfwWindow) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := gw.handle.GetCursorPos()
	if action == glfw.Press {
		gw.owner.pointerDown(x, y)
	} else if action == glfw.Release {
		gw.owner.pointerUp(x, y)
	}
}

// onCursorEnter ends a held drag when the cursor leaves the window.
func (gw *glfwWindow) onCursorEnter(_ *glfw.Window, entered bool) {
	if entered {
		return
	}
	x, y := gw.handle.GetCursorPos()
	gw.owner.pointerUp(x, y)
}

func (gw *glfwWindow) onCursorPos(_ *glfw.Window, x, y float64) {
	if gw.owner.onMouseMove != nil {
		gw.owner.onMouseMove(x, y)
	}
}

// onFramebufferSize reports pixel dimensions, which is what surface configuration needs.
func (gw *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w := gw.owner
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (gw *glfwWindow) stop() {
	gw.running = false
	gw.handle.SetShouldClose(true)
}

func (gw *glfwWindow) alive() bool {
	return gw.running && !gw.handle.ShouldClose()
}

func platformWindow(w *engineWindow) (*glfwWindow, bool) {
	gw, ok := w.internalWindow.(*glfwWindow)
	return gw, ok && gw != nil
}

// platformGetSurfaceDescriptor asks the wgpuglfw bridge for the per-OS surface descriptor.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := platformWindow(w)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.handle)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := platformWindow(w)
	return ok && gw.alive()
}

// platformCloseWindow destroys the window and terminates GLFW.
//
// Returns:
//   - error: if the window was never spawned
func platformCloseWindow(w *engineWindow) error {
	gw, ok := platformWindow(w)
	if !ok {
		return errNotSpawned
	}
	gw.stop()
	gw.handle.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages drains pending events without blocking and reports whether the window survived them.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
