package render

import (
	"math"

	"gloomcast/internal/camera"
	"gloomcast/internal/config"
	"gloomcast/internal/mathutil"
	"gloomcast/internal/world"
)

// Wall hit sides: a vertical grid line (stepping in x) or a horizontal one
// (stepping in y). Vertical hits get a fixed brightness bonus so adjacent
// wall faces read as distinct surfaces.
const (
	sideVertical = iota
	sideHorizontal
)

// Caster owns the frame and renders one complete view per Cast call: wall
// columns first, then sprites, then the minimap overlay.
type Caster struct {
	cam   *camera.Camera
	wld   *world.World
	frame *Frame

	ramp      []rune
	shades    int // highest ramp index
	sideShade int // brightness bonus for vertical-side hits
	shadeDif  int // cap for the height-keyed shade

	maxHops    int
	texturesOn bool

	minimap *minimap
}

// NewCaster builds a caster for the given camera and world. The frame
// starts empty; the caller resizes it before the first Cast.
func NewCaster(cam *camera.Camera, wld *world.World, cfg *config.Config) *Caster {
	ramp := []rune(cfg.GetAsciiRamp())
	shades := len(ramp) - 1
	sideShade := (shades + 1) / 5
	return &Caster{
		cam:        cam,
		wld:        wld,
		frame:      NewFrame(0, 0),
		ramp:       ramp,
		shades:     shades,
		sideShade:  sideShade,
		shadeDif:   shades - sideShade,
		maxHops:    cfg.GetMaxHops(),
		texturesOn: true,
		minimap:    newMinimap(wld.Map, cfg.GetMinimap()),
	}
}

// Frame returns the frame the caster draws into.
func (c *Caster) Frame() *Frame { return c.frame }

// Resize reshapes the frame to a new viewport.
func (c *Caster) Resize(width, height int) { c.frame.Resize(width, height) }

// ToggleTextures flips between textured walls and the bare distance ramp.
// Depth output is identical in both modes.
func (c *Caster) ToggleTextures() { c.texturesOn = !c.texturesOn }

// TexturesOn reports the state of the texture toggle.
func (c *Caster) TexturesOn() bool { return c.texturesOn }

// textured reports whether wall sampling is active: the toggle must be on
// and the world must actually carry wall textures.
func (c *Caster) textured() bool { return c.texturesOn && len(c.wld.WallTextures) > 0 }

// Cast renders a full frame, rewriting every glyph and depth cell. lift
// shifts wall and sprite slices vertically in fractions of their height;
// the game loop feeds it the player's jump arc, zero when grounded.
func (c *Caster) Cast(lift float64) {
	f := c.frame
	if f.width == 0 || f.height == 0 {
		return
	}
	f.clear(c.ramp[0], c.ramp[1])
	for x := 0; x < f.width; x++ {
		c.castColumn(x, lift)
	}
	c.castSprites(lift)
	c.minimap.overlay(f, c.cam.Pos)
}

// castColumn walks one ray through the wall grid and draws the column it
// hits. The walk is a DDA over grid lines: step to whichever of the next
// vertical or horizontal boundary is nearer and test that cell, until a
// wall turns up or the hop budget runs out (sky).
func (c *Caster) castColumn(x int, lift float64) {
	f := c.frame
	h := float64(f.height)

	// The ray fans out from the direction row by the plane row; the plane
	// magnitude (the fov) controls the spread.
	cx := 2*float64(x)/float64(f.width) - 1
	ray := c.cam.Dir().Add(c.cam.Plane().Scale(cx))

	pos := c.cam.Pos
	mapX, mapY := int(pos.X), int(pos.Y)

	deltaX, deltaY := invAbs(ray.X), invAbs(ray.Y)

	stepX, stepY := 1, 1
	sideX := (float64(mapX) + 1 - pos.X) * deltaX
	sideY := (float64(mapY) + 1 - pos.Y) * deltaY
	if ray.X < 0 {
		stepX = -1
		sideX = (pos.X - float64(mapX)) * deltaX
	}
	if ray.Y < 0 {
		stepY = -1
		sideY = (pos.Y - float64(mapY)) * deltaY
	}

	side := sideVertical
	hit := false
	for hop := 0; hop < c.maxHops; hop++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = sideVertical
		} else {
			sideY += deltaY
			mapY += stepY
			side = sideHorizontal
		}
		// Out-of-bounds cells read as wall, so the walk always terminates
		// at the map edge even on open maps.
		if c.wld.Map.IsWall(mapX, mapY) {
			hit = true
			break
		}
	}

	if !hit {
		// Sky: keep the background and push the column out to infinity.
		for y := 0; y < f.height; y++ {
			f.depth[y][x] = math.Inf(1)
		}
		return
	}

	// Distance measured along the camera's principal axis, not the ray,
	// so equal wall distances give equal column heights (no fish-eye).
	var perp float64
	if side == sideVertical {
		perp = (float64(mapX) - pos.X + (1-float64(stepX))/2) / ray.X
	} else {
		perp = (float64(mapY) - pos.Y + (1-float64(stepY))/2) / ray.Y
	}

	for y := 0; y < f.height; y++ {
		f.depth[y][x] = perp
	}

	lineHeight := h
	if perp > 0 {
		lineHeight = math.Round(h / perp)
	}

	liftRows := lift * lineHeight
	y0 := int(math.Max(0, (h-lineHeight)/2+liftRows))
	y1 := int(math.Min(h, (h+lineHeight)/2+liftRows))
	if y1 <= y0 {
		return // too far away to occupy a row
	}
	drawn := y1 - y0

	shade := mathutil.IntMin(drawn, c.shadeDif)
	if side == sideVertical {
		shade += c.sideShade
	}

	if !c.textured() {
		g := c.ramp[shade]
		for y := y0; y < y1; y++ {
			f.glyphs[y][x] = g
		}
		return
	}

	tex := c.wld.WallTextures[c.wld.Map.At(mapX, mapY)-1]
	texW, texH := float64(tex.Width()), float64(tex.Height())

	// The fractional hit position along the wall face picks the texture
	// column; the face coordinate lives on the axis the hit side did not
	// use. Mirror by ray sign so the pattern reads the same way round on
	// opposite faces.
	var wallX float64
	if side == sideVertical {
		wallX = pos.Y + perp*ray.Y
	} else {
		wallX = pos.X + perp*ray.X
	}
	wallX -= math.Floor(wallX)

	texX := int(wallX * texW)
	if (side == sideVertical && ray.X < 0) || (side == sideHorizontal && ray.Y > 0) {
		texX = tex.Width() - texX - 1
	}
	texX = mathutil.ClampInt(texX, 0, tex.Width()-1)

	// Interpolate texture rows across the visible rows of the slice. The
	// offset recenters slices taller than the screen. Digits above 6 add
	// shade steps, digits below subtract.
	offset := (lineHeight - float64(drawn)) / 2
	for i := 0; i < drawn; i++ {
		texY := mathutil.ClampInt(int((float64(i)+offset)*texH/lineHeight), 0, tex.Height()-1)
		s := shade + 2*tex.At(texX, texY) - 12
		f.glyphs[y0+i][x] = c.ramp[mathutil.ClampInt(s, 1, c.shades)]
	}
}

// invAbs returns |1/v|, saturating when v is zero. The camera's perturbed
// direction row keeps rays off the axes, but a fanned ray can still land
// on one.
func invAbs(v float64) float64 {
	if v == 0 {
		return 1e30
	}
	return math.Abs(1 / v)
}
