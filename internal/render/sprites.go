package render

import (
	"sort"

	"gloomcast/internal/mathutil"
	"gloomcast/internal/world"
)

// visibleSprite is a sprite that survived the behind-camera cull, carrying
// its camera-space coordinates: tx sideways along the plane, ty forward
// depth.
type visibleSprite struct {
	sprite *world.Sprite
	tx, ty float64
}

// castSprites paints every sprite in front of the camera over the wall
// columns, farthest first so nearer sprites overdraw. A sprite column is
// dropped where a wall stands closer; sprites never update the depth grid
// themselves.
func (c *Caster) castSprites(lift float64) {
	if len(c.wld.Sprites) == 0 {
		return
	}

	// Sprite world offsets decompose into plane and direction components
	// through the inverted view matrix.
	view := mathutil.Mat2{
		{c.cam.Plane().X, c.cam.Plane().Y},
		{c.cam.Dir().X, c.cam.Dir().Y},
	}
	inv, ok := view.Inverse()
	if !ok {
		return
	}

	visible := make([]visibleSprite, 0, len(c.wld.Sprites))
	for _, s := range c.wld.Sprites {
		t := s.Pos.Sub(c.cam.Pos).MulMat(inv)
		if t.Y <= 0 {
			continue
		}
		visible = append(visible, visibleSprite{sprite: s, tx: t.X, ty: t.Y})
	}

	// Farthest to closest; equal depths keep their insertion order, so the
	// later sprite wins the overdraw.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ty > visible[j].ty
	})

	for _, v := range visible {
		c.paintSprite(v, lift)
	}
}

func (c *Caster) paintSprite(v visibleSprite, lift float64) {
	f := c.frame
	h, w := float64(f.height), float64(f.width)

	screenX := int(w / 2 * (1 + v.tx/v.ty))

	// Apparent size shrinks with depth; glyph cells are roughly twice as
	// tall as wide, so the width is halved to keep proportions.
	spriteH := int(h / v.ty)
	spriteW := int(w / v.ty / 2)
	if spriteH == 0 || spriteW == 0 {
		return
	}

	liftRows := lift * float64(spriteH)
	y0 := mathutil.ClampInt(int((h-float64(spriteH))/2+liftRows), 0, f.height)
	y1 := mathutil.ClampInt(int((h+float64(spriteH))/2+liftRows), 0, f.height)
	x0 := mathutil.ClampInt(screenX-spriteW/2, 0, f.width)
	x1 := mathutil.ClampInt(screenX+spriteW/2, 0, f.width)

	tex := c.wld.SpriteTextures[v.sprite.Tex]
	texW, texH := float64(tex.Width()), float64(tex.Height())

	// clipX/clipY map the on-screen rectangle back onto the texture when
	// the sprite pokes out of the viewport.
	clipX := float64(screenX) - float64(spriteW)/2
	clipY := (float64(spriteH)-h)/2 - liftRows

	for x := x0; x < x1; x++ {
		if v.ty > f.depth[0][x] {
			continue // wall in front of this column
		}
		texX := mathutil.ClampInt(int((float64(x)-clipX)*texW/float64(spriteW)), 0, tex.Width()-1)
		for y := y0; y < y1; y++ {
			texY := mathutil.ClampInt(int((float64(y)+clipY)*texH/float64(spriteH)), 0, tex.Height()-1)
			if g := tex.At(texX, texY); g != world.TransparentRune {
				f.glyphs[y][x] = g
			}
		}
	}
}
