package common

import (
	"cmp"
	"math"
)

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound (inclusive)
//   - hi: upper bound (inclusive)
//
// Returns:
//   - T: v if it lies within the range, otherwise the nearest bound
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// DegToRad converts an angle in degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float64: the angle in radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped, so values outside [0, 1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements, may alias a or b)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll), which matches how the showcase
// applies yaw about the vertical axis before pitch. All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - rot: rotation angles in radians around X (pitch), Y (yaw) and Z (roll)
//   - scale: scale factors along each axis
func BuildModelMatrix(out []float32, pos, rot, scale [3]float32) {
	cx := float32(math.Cos(float64(rot[0])))
	sx := float32(math.Sin(float64(rot[0])))
	cy := float32(math.Cos(float64(rot[1])))
	sy := float32(math.Sin(float64(rot[1])))
	cz := float32(math.Cos(float64(rot[2])))
	sz := float32(math.Sin(float64(rot[2])))

	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scale[0]
	out[1] = (cx * sz) * scale[0]
	out[2] = (-sy*cz + cy*sx*sz) * scale[0]
	out[3] = 0

	out[4] = (cy*-sz + sy*sx*cz) * scale[1]
	out[5] = (cx * cz) * scale[1]
	out[6] = (sy*sz + cy*sx*cz) * scale[1]
	out[7] = 0

	out[8] = (sy * cx) * scale[2]
	out[9] = (-sx) * scale[2]
	out[10] = (cy * cx) * scale[2]
	out[11] = 0

	out[12] = pos[0]
	out[13] = pos[1]
	out[14] = pos[2]
	out[15] = 1
}

// TransformPoint applies a column-major 4x4 matrix to a point (w = 1).
//
// Parameters:
//   - m: the matrix (16 elements)
//   - p: the point to transform
//
// Returns:
//   - [3]float32: the transformed point
func TransformPoint(m []float32, p [3]float32) [3]float32 {
	return [3]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}
