package game_object

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation.
//
// Parameters:
//   - rx: pitch about X in radians
//   - ry: yaw about Y in radians
//   - rz: roll about Z in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithParts appends parts to the object. A part with zero scale is given unit scale.
//
// Parameters:
//   - parts: the parts to add, in draw order
//
// Returns:
//   - GameObjectBuilderOption: functional option to add parts
func WithParts(parts ...Part) GameObjectBuilderOption {
	return func(obj *gameObject) {
		for _, p := range parts {
			if p.Scale == [3]float32{} {
				p.Scale = [3]float32{1, 1, 1}
			}
			obj.parts = append(obj.parts, p)
		}
	}
}
