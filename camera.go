package pixelstream

import "math"

// Camera describes the 2D view transform for subsequent draw commands.
// X and Y are the world-space position the view centers on, Zoom is a
// uniform scale factor (1 = one world unit per pixel), and Rotation is
// in radians, counter-clockwise.
type Camera struct {
	X, Y     float32
	Zoom     float32
	Rotation float32
}

// DefaultCamera returns a camera centered on the origin with no zoom
// or rotation applied.
func DefaultCamera() Camera {
	return Camera{Zoom: 1}
}

// Affine returns the world-to-view transform as a row-major 2x3 affine
// matrix [a b tx; c d ty]. Consumers multiply sprite positions by this
// matrix before viewport mapping.
func (c Camera) Affine() [6]float32 {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	sin, cos := math.Sincos(float64(c.Rotation))
	a := float32(cos) * zoom
	b := float32(-sin) * zoom
	d := float32(sin) * zoom
	e := float32(cos) * zoom
	return [6]float32{
		a, b, -(a*c.X + b*c.Y),
		d, e, -(d*c.X + e*c.Y),
	}
}
