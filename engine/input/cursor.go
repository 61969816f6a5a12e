package input

import (
	"math"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// CursorOrientation maps a hovered cursor to an absolute orientation. The window
// centre faces forward and each edge turns the target a quarter turn: horizontal
// position drives yaw and vertical position drives pitch.
// A degenerate window reports ok = false.
//
// Parameters:
//   - x, y: cursor position in window pixels
//   - width, height: window size in pixels
//
// Returns:
//   - yaw, pitch: orientation in radians, each within [-pi/2, pi/2]
//   - ok: false if width or height is not positive
func CursorOrientation(x, y, width, height float64) (yaw, pitch float64, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	nx := common.Clamp(x/width*2-1, -1, 1)
	ny := common.Clamp(y/height*2-1, -1, 1)
	return nx * math.Pi / 2, ny * math.Pi / 2, true
}
