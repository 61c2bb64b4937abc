// Package game wires input, simulation, and rendering into the frame loop.
package game

import (
	"math"

	"gloomcast/internal/camera"
	"gloomcast/internal/mathutil"
	"gloomcast/internal/world"
)

// strafeRot turns the viewing direction a quarter turn left for sideways
// movement.
var strafeRot = mathutil.Rotation(3 * math.Pi / 2)

// Player binds the camera to the wall grid: movement collides with walls,
// and a jump arc lifts the view without changing the map position.
type Player struct {
	cam *camera.Camera
	m   *world.Map

	jumpFrames int // ticks in the rising half of the arc
	jumpTick   int
	jumping    bool
	lift       float64
}

// NewPlayer places a player over the given camera and wall grid.
func NewPlayer(cam *camera.Camera, m *world.Map, jumpFrames int) *Player {
	return &Player{cam: cam, m: m, jumpFrames: jumpFrames}
}

// Camera returns the player's view.
func (p *Player) Camera() *camera.Camera { return p.cam }

// Move advances the player dist map units along the view direction, or a
// quarter turn left of it when strafe is set. When the full step is
// blocked each axis is tried alone, so the player slides along walls
// instead of sticking to them.
func (p *Player) Move(dist float64, strafe bool) {
	dir := p.cam.Dir()
	if strafe {
		dir = dir.MulMat(strafeRot)
	}
	next := p.cam.Pos.Add(dir.Scale(dist))

	switch {
	case !p.m.IsWall(int(next.X), int(next.Y)):
		p.cam.Pos = next
	case !p.m.IsWall(int(next.X), int(p.cam.Pos.Y)):
		p.cam.Pos.X = next.X
	case !p.m.IsWall(int(p.cam.Pos.X), int(next.Y)):
		p.cam.Pos.Y = next.Y
	}
}

// Turn rotates the view by delta radians, positive to the right.
func (p *Player) Turn(delta float64) { p.cam.Rotate(delta) }

// Jump starts the arc. Presses while airborne are ignored.
func (p *Player) Jump() {
	p.jumping = true
}

// Jumping reports whether the player is airborne.
func (p *Player) Jumping() bool { return p.jumping }

// Lift is the current view lift in fractions of a wall height, zero when
// grounded. The renderer shifts wall and sprite slices down by it.
func (p *Player) Lift() float64 { return p.lift }

// Tick advances the jump arc one frame: quadratic rise over the first
// jumpFrames ticks, the mirrored fall over the next, then grounded again.
func (p *Player) Tick() {
	if !p.jumping {
		return
	}
	if p.jumpTick >= 2*p.jumpFrames {
		p.jumping, p.jumpTick, p.lift = false, 0, 0
		return
	}
	jf := float64(p.jumpFrames)
	rem := jf - float64(p.jumpTick)
	step := rem * rem / (10 * jf * jf)
	if p.jumpTick >= p.jumpFrames {
		step = -step
	}
	p.lift += step
	p.jumpTick++
}
