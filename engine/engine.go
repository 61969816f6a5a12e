package engine

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

// Window is the part of window.Window the engine drives.
type Window interface {
	SetResizeCallback(callback func(width, height int))
	ProcessMessages()
	Width() int
	Height() int
}

// Presenter is the part of renderer.Presenter the engine drives.
type Presenter interface {
	Configure(width, height int) error
	Present(r, g, b float64) error
}

// engine implements the Engine interface.
// Coordinates tick, render, and window threads.
type engine struct {
	rateUpdates chan time.Duration

	running atomic.Bool
	wg      sync.WaitGroup

	done     chan struct{}
	quitOnce sync.Once

	log   logger.Logger
	clock func() time.Time
	start time.Time

	window    Window
	presenter Presenter
	backdrop  *backdrop.Backdrop

	profiler  *profiler.Profiler
	profiling atomic.Bool

	tickPeriod     time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	scenesMu sync.RWMutex
	scenes   map[int]scene.Scene

	minFrameTime time.Duration // 0 = uncapped
}

// Engine is the main entry point for the showcase.
// It orchestrates the tick loop, render loop, and window management.
type Engine interface {
	// Window returns the window the engine pumps, or nil when headless.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// Now returns monotonic milliseconds since the engine was created.
	// Input handlers and the render loop share this clock so drag and tick
	// timestamps are comparable.
	//
	// Returns:
	//   - float64: elapsed time in milliseconds
	Now() float64

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame after
	// scenes have been updated and the frame presented.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Active scenes are updated in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining update order (lower first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the tick and render loops and blocks until the window closes
	// or Quit is called. Without a window it blocks until Quit.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		rateUpdates: make(chan time.Duration, 1),
		done:        make(chan struct{}),
		scenes:      make(map[int]scene.Scene),
		log:         logger.NewNop(),
		clock:       time.Now,
		tickPeriod:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	e.start = e.clock()
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log.With(logger.F("component", "profiler"))))
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.onResize)
		if e.presenter != nil {
			if err := e.presenter.Configure(e.window.Width(), e.window.Height()); err != nil {
				e.log.Error("surface configure failed", logger.F("error", err))
			}
		}
	}

	return e
}

// onResize reconfigures the presenter to the new framebuffer size.
func (e *engine) onResize(width, height int) {
	e.log.Debug("window resized", logger.F("width", width), logger.F("height", height))
	if e.presenter == nil {
		return
	}
	if err := e.presenter.Configure(width, height); err != nil {
		e.log.Error("surface reconfigure failed", logger.F("error", err))
	}
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Now() float64 {
	return float64(e.clock().Sub(e.start)) / float64(time.Millisecond)
}

// Run blocks in the window's message pump, or until Quit when headless.
func (e *engine) Run() {
	e.running.Store(true)
	e.log.Info("engine started",
		logger.F("tick_rate", e.tickPeriod.String()),
		logger.F("frame_limit", e.minFrameTime.String()),
	)
	e.startLoops()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
	e.log.Info("engine stopped")
}

// Quit stops the loops. Later calls do nothing.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.done)
	})
}

// startLoops launches the tick, render and quit goroutines under one WaitGroup.
func (e *engine) startLoops() {
	loops := []func(){e.tickLoop, e.renderLoop, e.awaitQuit}
	e.wg.Add(len(loops))
	for _, loop := range loops {
		go func() {
			defer e.wg.Done()
			loop()
		}()
	}
}

// tickLoop fires the tick callback at tickPeriod and picks up rate changes from rateUpdates.
func (e *engine) tickLoop() {
	ticker := time.NewTicker(e.tickPeriod)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.done:
			return
		case rate := <-e.rateUpdates:
			ticker.Reset(rate)
			e.tickPeriod = rate
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if cb := e.tickCallback; cb != nil {
				cb(dt)
			}
		}
	}
}

// renderLoop draws frames back to back, or paced by minFrameTime, until quit.
// A panic inside a frame is logged and stops the engine.
func (e *engine) renderLoop() {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("render goroutine recovered from panic", logger.F("panic", fmt.Sprint(r)))
			e.signalQuit()
		}
	}()

	last := time.Now()
	for e.alive() {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart

		e.renderFrame(e.Now())
		if cb := e.renderCallback; cb != nil {
			cb(dt)
		}
		if e.profiling.Load() && e.profiler != nil {
			e.profiler.Tick()
		}
		e.pace(frameStart)
	}
}

func (e *engine) alive() bool {
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}

// pace sleeps out whatever is left of minFrameTime since frameStart.
func (e *engine) pace(frameStart time.Time) {
	if e.minFrameTime <= 0 {
		return
	}
	if remaining := e.minFrameTime - time.Since(frameStart); remaining > 0 {
		time.Sleep(remaining)
	}
}

// renderFrame updates every active scene with one timestamp and presents the backdrop colour.
func (e *engine) renderFrame(nowMs float64) {
	for _, s := range e.activeScenes() {
		s.Update(nowMs)
	}

	if e.presenter == nil {
		return
	}
	c := backdrop.Color{R: 0.1, G: 0.1, B: 0.1}
	if e.backdrop != nil {
		e.backdrop.Advance()
		c = e.backdrop.ClearColor()
	}
	if err := e.presenter.Present(c.R, c.G, c.B); err != nil {
		e.log.Warn("present failed", logger.F("error", err))
	}
}

// activeScenes returns the active scenes sorted by z-index.
func (e *engine) activeScenes() []scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// awaitQuit keeps the WaitGroup open until quit is signalled.
func (e *engine) awaitQuit() {
	<-e.done
}

func (e *engine) EnableProfiler() {
	e.profiling.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profiling.Store(false)
}

// SetTickRate applies immediately while running. Only the newest pending rate is kept.
func (e *engine) SetTickRate(fps float64) {
	rate := tickInterval(fps)
	if !e.running.Load() {
		e.tickPeriod = rate
		return
	}
	for {
		select {
		case e.rateUpdates <- rate:
			return
		default:
		}
		select {
		case <-e.rateUpdates:
		default:
		}
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.minFrameTime = frameInterval(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

// tickInterval converts a rate to a period, treating <= 0 as 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameInterval converts a frame cap to a minimum frame duration; <= 0 means uncapped.
func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
