package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-showcase/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showcase/engine/logger"
	"github.com/Carmen-Shannon/oxy-showcase/engine/rotation"
)

// Scene binds a rotation controller to an optional showcase target.
// The engine calls Update once per rendered frame for every active scene.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is updated by the engine.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is updated by the engine.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Controller returns the rotation controller driving the scene.
	//
	// Returns:
	//   - rotation.RotationController: the controller
	Controller() rotation.RotationController

	// Target returns the object the orientation is applied to, or nil.
	//
	// Returns:
	//   - game_object.GameObject: the target or nil
	Target() game_object.GameObject

	// SetTarget replaces the target. Passing nil detaches it; the controller
	// keeps advancing on Update either way.
	//
	// Parameters:
	//   - target: the new target or nil
	SetTarget(target game_object.GameObject)

	// Update ticks the controller once and applies the resulting orientation
	// to the target as (pitch about X, yaw about Y). When the target is enabled
	// its part world matrices are recomputed on the compute pool.
	//
	// Parameters:
	//   - now: monotonic time in milliseconds
	//
	// Returns:
	//   - rotation.Orientation: the orientation after the tick
	Update(now float64) rotation.Orientation

	// PartWorldMatrices returns a copy of the part world matrices computed by
	// the last Update, indexed like the target's parts.
	//
	// Returns:
	//   - [][16]float32: the matrices, empty when no target has been updated
	PartWorldMatrices() [][16]float32

	// Close stops the compute pool.
	Close()
}

type scene struct {
	mu     *sync.RWMutex
	log    logger.Logger
	name   string
	active bool

	controller rotation.RotationController
	target     game_object.GameObject
	worlds     [][16]float32

	// computePool holds reusable goroutines for per-part matrix prep.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates an inactive scene driven by controller.
// Panics if controller is nil.
//
// Parameters:
//   - name: the name of the scene
//   - controller: the rotation controller (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, controller rotation.RotationController, options ...SceneBuilderOption) Scene {
	if controller == nil {
		panic("scene: NewScene requires a non-nil RotationController")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		log:            logger.NewNop(),
		name:           name,
		controller:     controller,
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Queue size covers a car's parts with headroom; SubmitTask blocks when full.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)
	s.log = s.log.With(logger.F("scene", name))
	s.log.Debug("scene created",
		logger.F("compute_workers", s.computeWorkers),
		logger.F("has_target", s.target != nil),
	)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Controller() rotation.RotationController {
	return s.controller
}

func (s *scene) Target() game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

func (s *scene) SetTarget(target game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	s.worlds = s.worlds[:0]
	if target == nil {
		s.log.Info("target detached")
		return
	}
	s.log.Info("target attached", logger.F("id", target.ID()), logger.F("parts", target.PartCount()))
}

func (s *scene) Update(now float64) rotation.Orientation {
	o := s.controller.Tick(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil {
		return o
	}
	s.target.SetRotation(float32(o.Pitch), float32(o.Yaw), 0)
	if !s.target.Enabled() {
		return o
	}
	s.prepareParts()
	return o
}

// prepareParts fans the part world matrices out over the compute pool.
// A WaitGroup is the per-frame barrier; pool.Wait() waits for workers to
// idle-exit and cannot be used at frame rate. Caller must hold the write lock.
func (s *scene) prepareParts() {
	target := s.target
	n := target.PartCount()
	if cap(s.worlds) < n {
		s.worlds = make([][16]float32, n)
	}
	s.worlds = s.worlds[:n]

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				s.worlds[i] = target.WorldMatrix(i)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) PartWorldMatrices() [][16]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][16]float32, len(s.worlds))
	copy(out, s.worlds)
	return out
}

func (s *scene) Close() {
	s.computePool.Stop()
	s.log.Debug("scene closed")
}
