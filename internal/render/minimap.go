package render

import (
	"gloomcast/internal/config"
	"gloomcast/internal/mathutil"
	"gloomcast/internal/world"
)

const (
	minimapWall   = '#'
	minimapOpen   = ' '
	minimapPlayer = '@'
)

// minimap is a glyph sketch of the wall grid, built once and blitted into
// the bottom-right corner of every frame.
type minimap struct {
	cells  [][]rune
	width  int
	height int
	cfg    config.MinimapConfig
}

func newMinimap(m *world.Map, cfg config.MinimapConfig) *minimap {
	cells := make([][]rune, m.Height())
	for y := range cells {
		row := make([]rune, m.Width())
		for x := range row {
			g := rune(minimapOpen)
			if m.IsWall(x, y) {
				g = minimapWall
			}
			row[x] = g
		}
		cells[y] = row
	}
	return &minimap{cells: cells, width: m.Width(), height: m.Height(), cfg: cfg}
}

// at reads the sketch without bounds; cells beyond the map are open, so a
// window centered near the map edge blits cleanly.
func (m *minimap) at(x, y int) rune {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return minimapOpen
	}
	return m.cells[y][x]
}

// overlay blits a window of the sketch centered on pos over the frame's
// bottom-right corner, then marks pos itself. Window dimensions are even
// fractions of the viewport; a viewport too small for the window plus its
// margins gets no overlay.
func (m *minimap) overlay(f *Frame, pos mathutil.Vec2) {
	width := int(m.cfg.WidthFraction * float64(f.width))
	width += width % 2
	height := int(m.cfg.HeightFraction * float64(f.height))
	height += height % 2
	if width <= 0 || height <= 0 {
		return
	}

	left := f.width - width - m.cfg.MarginX
	top := f.height - height - m.cfg.MarginY
	if left < 0 || top < 0 {
		return
	}

	px, py := int(pos.X), int(pos.Y)
	hw, hh := width/2, height/2
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			f.glyphs[top+row][left+col] = m.at(px-hw+col, py-hh+row)
		}
	}
	f.glyphs[top+hh][left+hw] = minimapPlayer
}
