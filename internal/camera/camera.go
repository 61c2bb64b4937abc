// Package camera models the player's view as a 2x2 plane transform over
// the world grid. Row 0 of the matrix is the viewing direction, row 1 the
// camera plane whose magnitude is the field of view. Heading and fov are
// always derived from the matrix, never stored beside it.
package camera

import (
	"math"

	"gloomcast/internal/mathutil"
)

// FOV bounds. Out-of-range values are clamped, never rejected.
const (
	MinFOV = 0.0
	MaxFOV = 1.0
)

// baseDir seeds the direction row slightly off-axis so that a freshly
// built camera never has a zero ray component on either axis.
var baseDir = mathutil.Vec2{X: 1.001, Y: 0.001}

// Camera is a positioned view transform. Pos is in map units; the matrix
// carries heading and field of view together.
type Camera struct {
	Pos   mathutil.Vec2
	plane mathutil.Mat2
}

// New returns a camera at pos with heading theta (radians) and the given
// field of view.
func New(pos mathutil.Vec2, theta, fov float64) *Camera {
	return &Camera{
		Pos:   pos,
		plane: basePlane(fov).Mul(mathutil.Rotation(theta)),
	}
}

// basePlane is the unrotated view matrix for a clamped fov.
func basePlane(fov float64) mathutil.Mat2 {
	fov = mathutil.Clamp(fov, MinFOV, MaxFOV)
	return mathutil.Mat2{
		{baseDir.X, baseDir.Y},
		{0, fov},
	}
}

// Matrix returns the full view matrix: row 0 direction, row 1 plane.
func (c *Camera) Matrix() mathutil.Mat2 { return c.plane }

// Dir returns the viewing direction row.
func (c *Camera) Dir() mathutil.Vec2 { return c.plane.Row(0) }

// Plane returns the camera plane row. Its length is the field of view.
func (c *Camera) Plane() mathutil.Vec2 { return c.plane.Row(1) }

// Theta returns the heading derived from the direction row.
func (c *Camera) Theta() float64 {
	d := c.Dir()
	return math.Atan2(d.Y, d.X)
}

// FOV returns the field of view derived from the plane row.
func (c *Camera) FOV() float64 { return c.Plane().Len() }

// Rotate turns the camera by delta radians. Successive small rotations
// accumulate in the matrix without renormalization.
func (c *Camera) Rotate(delta float64) {
	c.plane = c.plane.Mul(mathutil.Rotation(delta))
}

// SetTheta rebuilds the view matrix at the given heading, keeping the
// current field of view.
func (c *Camera) SetTheta(theta float64) {
	c.plane = basePlane(c.FOV()).Mul(mathutil.Rotation(theta))
}

// SetFOV rebuilds the view matrix with the clamped field of view, keeping
// the current heading.
func (c *Camera) SetFOV(fov float64) {
	c.plane = basePlane(fov).Mul(mathutil.Rotation(c.Theta()))
}
