// Package render is the rendering core: a frame buffer, a per-column DDA
// ray-caster over the wall grid, a depth-sorted sprite compositor, and a
// minimap overlay. One Cast call produces one complete frame.
package render

import "math"

// Frame is the render target: a glyph grid plus a parallel depth grid.
// Depth holds the perpendicular wall distance of the column; every row of
// a column carries the same value, so occlusion tests may read any cell.
type Frame struct {
	width  int
	height int
	glyphs [][]rune
	depth  [][]float64
}

// NewFrame returns a frame sized to the given viewport.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize reallocates both grids to the new shape, discarding prior
// contents. The next Cast repopulates every cell; nothing is redrawn
// incrementally.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height
	f.glyphs = make([][]rune, height)
	f.depth = make([][]float64, height)
	for y := 0; y < height; y++ {
		f.glyphs[y] = make([]rune, width)
		f.depth[y] = make([]float64, width)
	}
}

// Width returns the viewport width in columns.
func (f *Frame) Width() int { return f.width }

// Height returns the viewport height in rows.
func (f *Frame) Height() int { return f.height }

// Glyphs returns the glyph grid, row-major with the top row first. The
// terminal layer blits it verbatim.
func (f *Frame) Glyphs() [][]rune { return f.glyphs }

// GlyphAt returns the glyph at column x, row y.
func (f *Frame) GlyphAt(x, y int) rune { return f.glyphs[y][x] }

// DepthAt returns the wall depth at column x, row y.
func (f *Frame) DepthAt(x, y int) float64 { return f.depth[y][x] }

// clear resets every cell: sky glyphs above the horizon, a dotted floor on
// every second column below it, and depth pushed out to infinity.
func (f *Frame) clear(sky, floor rune) {
	horizon := f.height / 2
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			g := sky
			if y >= horizon && x%2 == 0 {
				g = floor
			}
			f.glyphs[y][x] = g
			f.depth[y][x] = math.Inf(1)
		}
	}
}
