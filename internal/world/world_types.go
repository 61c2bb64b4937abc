// Package world loads and holds the static play field: the wall grid, the
// wall and sprite textures, and the sprite list.
package world

import "gloomcast/internal/mathutil"

const (
	// CellEmpty marks a walkable map cell. Any other value is a wall whose
	// texture index is the cell value minus one.
	CellEmpty = 0

	// TransparentRune is reserved in sprite textures: cells holding it leave
	// the frame untouched when the sprite is painted.
	TransparentRune = '0'
)

// Map is an immutable wall grid. Rows index y, columns x.
type Map struct {
	cells  [][]int
	width  int
	height int
}

// At returns the cell value at (x, y). Coordinates outside the grid read as
// solid wall so that ray walks and movement always terminate at the edge.
func (m *Map) At(x, y int) int {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 1
	}
	return m.cells[y][x]
}

// IsWall reports whether (x, y) blocks rays and movement.
func (m *Map) IsWall(x, y int) bool { return m.At(x, y) != CellEmpty }

// Width returns the grid width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *Map) Height() int { return m.height }

// MaxCell returns the largest cell value anywhere in the grid.
func (m *Map) MaxCell() int {
	max := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c > max {
				max = c
			}
		}
	}
	return max
}

// Sprite is a billboard pinned to a world position. Tex indexes the loaded
// sprite textures. Positions may be animated by the game loop; the slice
// order of sprites in a World is their insertion order.
type Sprite struct {
	Pos mathutil.Vec2
	Tex int
}

// WallTexture is a rectangular grid of shade digits 0-9.
type WallTexture struct {
	cells  [][]int
	width  int
	height int
}

// At returns the digit at texture column x, row y.
func (t *WallTexture) At(x, y int) int { return t.cells[y][x] }

// Width returns the texture width in columns.
func (t *WallTexture) Width() int { return t.width }

// Height returns the texture height in rows.
func (t *WallTexture) Height() int { return t.height }

// SpriteTexture is a rectangular grid of glyphs. TransparentRune cells are
// holes.
type SpriteTexture struct {
	cells  [][]rune
	width  int
	height int
}

// At returns the glyph at texture column x, row y.
func (t *SpriteTexture) At(x, y int) rune { return t.cells[y][x] }

// Width returns the texture width in columns.
func (t *SpriteTexture) Width() int { return t.width }

// Height returns the texture height in rows.
func (t *SpriteTexture) Height() int { return t.height }

// World bundles everything the renderer and the game loop need from disk.
type World struct {
	Map            *Map
	Sprites        []*Sprite
	WallTextures   []*WallTexture
	SpriteTextures []*SpriteTexture
}
