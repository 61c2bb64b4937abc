package render

import (
	"testing"

	"gloomcast/internal/camera"
	"gloomcast/internal/config"
	"gloomcast/internal/mathutil"
	"gloomcast/internal/world"
)

func TestMinimapSketch(t *testing.T) {
	m := loadTestMap(t, "111\n101\n111\n")
	mm := newMinimap(m, config.MinimapConfig{WidthFraction: 0.2, HeightFraction: 0.3, MarginX: 5, MarginY: 5})

	if g := mm.at(1, 1); g != ' ' {
		t.Errorf("open cell = %q, want blank", g)
	}
	if g := mm.at(0, 1); g != '#' {
		t.Errorf("wall cell = %q, want '#'", g)
	}
	if g := mm.at(-5, 99); g != ' ' {
		t.Errorf("out-of-bounds cell = %q, want blank", g)
	}
}

func TestMinimapOverlay(t *testing.T) {
	m := loadTestMap(t, ringMap(11))
	wld := &world.World{Map: m}
	cam := camera.New(mathutil.Vec2{X: 1.5, Y: 1.5}, 0, 0.66)

	cfg := &config.Config{}
	cfg.Render.Minimap = config.MinimapConfig{
		WidthFraction:  0.2,
		HeightFraction: 0.3,
		MarginX:        2,
		MarginY:        1,
	}
	c := NewCaster(cam, wld, cfg)
	c.Resize(40, 20)
	c.Cast(0)
	f := c.Frame()

	// An 8x6 window sits 2 and 1 cells in from the bottom-right corner,
	// centered on the player's map cell.
	left, top := 40-8-2, 20-6-1
	if g := f.GlyphAt(left+4, top+3); g != '@' {
		t.Errorf("player marker = %q, want '@'", g)
	}
	if g := f.GlyphAt(left+3, top+2); g != '#' {
		t.Errorf("cell over the north wall = %q, want '#'", g)
	}
	if g := f.GlyphAt(left, top); g != ' ' {
		t.Errorf("cell beyond the map edge = %q, want blank", g)
	}
}

func TestMinimapSkippedWhenCramped(t *testing.T) {
	m := loadTestMap(t, ringMap(11))
	wld := &world.World{Map: m}
	cam := camera.New(mathutil.Vec2{X: 1.5, Y: 1.5}, 0, 0.66)

	cfg := &config.Config{}
	cfg.Render.Minimap = config.MinimapConfig{
		WidthFraction:  0.2,
		HeightFraction: 0.3,
		MarginX:        9,
		MarginY:        9,
	}
	c := NewCaster(cam, wld, cfg)
	c.Resize(10, 10)
	c.Cast(0)

	if frameContains(c.Frame(), '@') {
		t.Error("marker drawn on a viewport with no room for the overlay")
	}
}
