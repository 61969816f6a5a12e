package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// Part is a rigid piece of a GameObject placed relative to the object's origin.
type Part struct {
	Name     string
	Color    uint32
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

type gameObject struct {
	mu      *sync.RWMutex
	id      uint64
	enabled atomic.Bool

	position [3]float32
	rotation [3]float32
	scale    [3]float32
	model    [16]float32

	parts  []Part
	locals [][16]float32
}

// GameObject is a rotatable showcase target made of named parts.
// Rotation is (pitch about X, yaw about Y, roll about Z) in radians.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Position returns the object's translation.
	Position() [3]float32

	// Rotation returns the object's Euler rotation (pitch, yaw, roll).
	Rotation() [3]float32

	// Scale returns the object's scale.
	Scale() [3]float32

	// SetPosition moves the object and rebuilds its model matrix.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation and rebuilds the model matrix.
	//
	// Parameters:
	//   - rx: pitch about X
	//   - ry: yaw about Y
	//   - rz: roll about Z
	SetRotation(rx, ry, rz float32)

	// SetScale sets the object's scale and rebuilds its model matrix.
	//
	// Parameters:
	//   - sx, sy, sz: new scale components
	SetScale(sx, sy, sz float32)

	// ModelMatrix returns the object's column-major model matrix.
	//
	// Returns:
	//   - [16]float32: translation * rotation * scale
	ModelMatrix() [16]float32

	// PartCount returns the number of parts.
	PartCount() int

	// Part returns the part at index i.
	//
	// Parameters:
	//   - i: part index in [0, PartCount())
	//
	// Returns:
	//   - Part: the part description
	Part(i int) Part

	// PartIndex looks up a part by name.
	//
	// Parameters:
	//   - name: the part name
	//
	// Returns:
	//   - int: the part index, or -1 if no part has that name
	PartIndex(name string) int

	// WorldMatrix computes the world matrix of part i as model * local.
	// Safe to call concurrently for different parts.
	//
	// Parameters:
	//   - i: part index in [0, PartCount())
	//
	// Returns:
	//   - [16]float32: the part's column-major world matrix
	WorldMatrix(i int) [16]float32
}

var _ GameObject = &gameObject{}

// NewGameObject creates a GameObject at the origin with unit scale and no parts.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the configured object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.RWMutex{},
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)

	for _, option := range options {
		option(obj)
	}

	obj.locals = make([][16]float32, len(obj.parts))
	for i, p := range obj.parts {
		common.BuildModelMatrix(obj.locals[i][:], p.Position, p.Rotation, p.Scale)
	}
	obj.rebuild()
	return obj
}

// rebuild refreshes the model matrix. Caller must hold the write lock or own obj exclusively.
func (obj *gameObject) rebuild() {
	common.BuildModelMatrix(obj.model[:], obj.position, obj.rotation, obj.scale)
}

func (obj *gameObject) ID() uint64 {
	return obj.id
}

func (obj *gameObject) Enabled() bool {
	return obj.enabled.Load()
}

func (obj *gameObject) SetEnabled(enabled bool) {
	obj.enabled.Store(enabled)
}

func (obj *gameObject) Position() [3]float32 {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return obj.position
}

func (obj *gameObject) Rotation() [3]float32 {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return obj.rotation
}

func (obj *gameObject) Scale() [3]float32 {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return obj.scale
}

func (obj *gameObject) SetPosition(x, y, z float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.position = [3]float32{x, y, z}
	obj.rebuild()
}

func (obj *gameObject) SetRotation(rx, ry, rz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.rotation = [3]float32{rx, ry, rz}
	obj.rebuild()
}

func (obj *gameObject) SetScale(sx, sy, sz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.scale = [3]float32{sx, sy, sz}
	obj.rebuild()
}

func (obj *gameObject) ModelMatrix() [16]float32 {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return obj.model
}

func (obj *gameObject) PartCount() int {
	return len(obj.parts)
}

func (obj *gameObject) Part(i int) Part {
	return obj.parts[i]
}

func (obj *gameObject) PartIndex(name string) int {
	for i, p := range obj.parts {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (obj *gameObject) WorldMatrix(i int) [16]float32 {
	obj.mu.RLock()
	model := obj.model
	obj.mu.RUnlock()

	var out [16]float32
	common.Mul4(out[:], model[:], obj.locals[i][:])
	return out
}
