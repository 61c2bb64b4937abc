package render

import (
	"math"
	"testing"
)

func TestFrameResize(t *testing.T) {
	f := NewFrame(8, 6)
	if f.Width() != 8 || f.Height() != 6 {
		t.Fatalf("frame = %dx%d, want 8x6", f.Width(), f.Height())
	}
	if len(f.Glyphs()) != 6 || len(f.Glyphs()[0]) != 8 {
		t.Fatalf("glyph grid has %d rows of %d, want 6 rows of 8", len(f.Glyphs()), len(f.Glyphs()[0]))
	}

	f.Resize(3, 2)
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("after resize frame = %dx%d, want 3x2", f.Width(), f.Height())
	}
	for y, row := range f.Glyphs() {
		if len(row) != 3 {
			t.Fatalf("row %d has %d cells, want 3", y, len(row))
		}
	}

	f.Resize(-4, -4)
	if f.Width() != 0 || f.Height() != 0 {
		t.Fatalf("negative resize gave %dx%d, want 0x0", f.Width(), f.Height())
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f.glyphs[y][x] = 'X'
			f.depth[y][x] = 1
		}
	}

	f.clear('s', 'f')

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 's'
			if y >= 2 && x%2 == 0 {
				want = 'f' // dotted floor below the horizon
			}
			if got := f.GlyphAt(x, y); got != want {
				t.Errorf("glyph (%d,%d) = %q, want %q", x, y, got, want)
			}
			if !math.IsInf(f.DepthAt(x, y), 1) {
				t.Errorf("depth (%d,%d) = %v, want +inf", x, y, f.DepthAt(x, y))
			}
		}
	}
}
