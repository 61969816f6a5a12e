package game_object

import "math"

// Car part names.
const (
	PartBody       = "body"
	PartWindow     = "window"
	PartSoftTop    = "soft_top"
	PartWheelFL    = "wheel_front_left"
	PartWheelFR    = "wheel_front_right"
	PartWheelRL    = "wheel_rear_left"
	PartWheelRR    = "wheel_rear_right"
	CarHomeYaw     = -math.Pi / 4
	CarHomePitch   = math.Pi / 12
	wheelTurnAngle = math.Pi / 2
)

// CarParts returns the parts of the showcase roadster.
func CarParts() []Part {
	wheel := func(name string, x, z float32) Part {
		return Part{
			Name:     name,
			Color:    0x333333,
			Position: [3]float32{x, 0.19, z},
			Rotation: [3]float32{wheelTurnAngle, 0, 0},
		}
	}
	return []Part{
		{Name: PartBody, Color: 0xFFFFFF, Position: [3]float32{0, 0.3, -0.5}},
		{Name: PartWindow, Color: 0x000000, Position: [3]float32{0.4, 0.5, 0.45}, Rotation: [3]float32{0, math.Pi, 0}},
		{Name: PartSoftTop, Color: 0x800000, Position: [3]float32{-0.36, 0.54, 0}},
		wheel(PartWheelFL, -0.7, 0.5),
		wheel(PartWheelFR, 0.7, 0.5),
		wheel(PartWheelRL, -0.7, -0.5),
		wheel(PartWheelRR, 0.7, -0.5),
	}
}

// NewCar creates the showcase car turned toward the viewer's lower right.
// Options apply after the car defaults and may override them.
//
// Parameters:
//   - options: functional options to configure the car
//
// Returns:
//   - GameObject: the car
func NewCar(options ...GameObjectBuilderOption) GameObject {
	defaults := []GameObjectBuilderOption{
		WithParts(CarParts()...),
		WithRotation(CarHomePitch, CarHomeYaw, 0),
	}
	return NewGameObject(append(defaults, options...)...)
}
