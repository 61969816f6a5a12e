package backdrop

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// Color is a linear RGB colour with components in [0, 1].
type Color struct {
	R, G, B float64
}

// RGBA converts c to an 8-bit opaque colour.
func (c Color) RGBA() color.RGBA {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(common.Clamp(v, 0, 1) * 255))
	}
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

// Default gradient settings.
var (
	DefaultFrom = Color{1, 0, 0}
	DefaultTo   = Color{1, 0.84, 0}
)

const (
	DefaultStep      = 0.01
	DefaultSpinSpeed = 0.5
)

// Backdrop is a two-colour linear gradient whose direction spins over time.
// It is safe for concurrent use.
type Backdrop struct {
	mu        sync.Mutex
	time      float64
	step      float64
	spinSpeed float64
	from      Color
	to        Color
}

// BackdropOption configures a Backdrop.
type BackdropOption func(b *Backdrop)

// WithColors sets the gradient end colours.
//
// Parameters:
//   - from: colour at the trailing edge of the gradient direction
//   - to: colour at the leading edge
//
// Returns:
//   - BackdropOption: option function to apply
func WithColors(from, to Color) BackdropOption {
	return func(b *Backdrop) {
		b.from = from
		b.to = to
	}
}

// WithStep sets how far Advance moves the gradient clock per frame.
//
// Parameters:
//   - step: clock increment per Advance call
//
// Returns:
//   - BackdropOption: option function to apply
func WithStep(step float64) BackdropOption {
	return func(b *Backdrop) {
		b.step = step
	}
}

// NewBackdrop creates the red to gold backdrop at time zero.
//
// Parameters:
//   - options: functional options to configure the backdrop
//
// Returns:
//   - *Backdrop: the backdrop
func NewBackdrop(options ...BackdropOption) *Backdrop {
	b := &Backdrop{
		step:      DefaultStep,
		spinSpeed: DefaultSpinSpeed,
		from:      DefaultFrom,
		to:        DefaultTo,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Advance moves the gradient clock forward one frame.
//
// Returns:
//   - float64: the new clock value
func (b *Backdrop) Advance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.time += b.step
	return b.time
}

// Time returns the gradient clock.
func (b *Backdrop) Time() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.time
}

// Sample evaluates the gradient at a texture coordinate.
// (0, 0) is the bottom-left corner and (1, 1) the top-right.
//
// Parameters:
//   - u, v: texture coordinate
//
// Returns:
//   - Color: the gradient colour
func (b *Backdrop) Sample(u, v float64) Color {
	b.mu.Lock()
	t := b.time
	b.mu.Unlock()
	return b.sampleAt(t, u, v)
}

func (b *Backdrop) sampleAt(t, u, v float64) Color {
	angle := t * b.spinSpeed
	d := ((u-0.5)*math.Cos(angle)+(v-0.5)*math.Sin(angle))*0.5 + 0.5
	d = common.Clamp(d, 0, 1)
	return Color{
		R: common.Lerp(b.from.R, b.to.R, d),
		G: common.Lerp(b.from.G, b.to.G, d),
		B: common.Lerp(b.from.B, b.to.B, d),
	}
}

// ClearColor returns the colour at the top-right corner, used as the window
// clear colour when the gradient is not drawn per pixel.
func (b *Backdrop) ClearColor() Color {
	return b.Sample(1, 1)
}

// Fill paints the whole gradient into img at the current clock.
//
// Parameters:
//   - img: destination image; its bounds span uv (0, 0) to (1, 1)
func (b *Backdrop) Fill(img *image.RGBA) {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}
	t := b.Time()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		v := 1 - (float64(y-bounds.Min.Y)+0.5)/h
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			u := (float64(x-bounds.Min.X) + 0.5) / w
			img.SetRGBA(x, y, b.sampleAt(t, u, v).RGBA())
		}
	}
}
