package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Surface2D is the renderer's W×H packed-color output. DirectRender and
// RenderIsometric allocate a fresh surface on every call; no render call
// writes into an existing surface. BlitTo copies a finished frame into a
// surface the caller keeps across frames.
type Surface2D struct {
	W, H   int
	Pixels []uint32
}

// NewSurface2D allocates a fully transparent/background surface.
func NewSurface2D(w, h int) *Surface2D {
	return &Surface2D{W: w, H: h, Pixels: make([]uint32, w*h)}
}

// Fill overwrites every pixel with c.
func (s *Surface2D) Fill(c uint32) {
	for i := range s.Pixels {
		s.Pixels[i] = c
	}
}

func (s *Surface2D) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Set writes a pixel; out-of-bounds writes are no-ops, matching the grid
// package's write discipline.
func (s *Surface2D) Set(x, y int, c uint32) {
	if !s.inBounds(x, y) {
		return
	}
	s.Pixels[y*s.W+x] = c
}

func (s *Surface2D) Get(x, y int) uint32 {
	if !s.inBounds(x, y) {
		return 0
	}
	return s.Pixels[y*s.W+x]
}

// ErrDimensionMismatch is returned by BlitTo when the destination
// surface's dimensions don't match; the renderer rejects the frame and
// the driver re-creates the surface before retrying.
type dimensionMismatchError struct{}

func (dimensionMismatchError) Error() string { return "render: surface dimension mismatch" }

var ErrDimensionMismatch error = dimensionMismatchError{}

// BlitTo copies this surface's pixels into dst, rejecting the frame with
// ErrDimensionMismatch if the dimensions disagree rather than silently
// resizing or truncating.
func (s *Surface2D) BlitTo(dst *Surface2D) error {
	if dst.W != s.W || dst.H != s.H {
		return ErrDimensionMismatch
	}
	copy(dst.Pixels, s.Pixels)
	return nil
}

// ToRGBA adapts the surface to a stdlib image.RGBA, the boundary the
// driver/test code uses to hand a frame to any stdlib-image consumer
// without the renderer depending on a window system.
func (s *Surface2D) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			r, g, b, a := rgba(s.Get(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// ScaleInto resizes the surface into a dst image of arbitrary size using
// x/image/draw's approximate bilinear scaler, for presenters that need a
// different output resolution than the simulation grid.
func (s *Surface2D) ScaleInto(dst *image.RGBA) {
	src := s.ToRGBA()
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
}
