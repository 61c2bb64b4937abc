package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// readTextureLines loads the raw rows of a texture file and validates that
// the grid is non-empty and rectangular.
func readTextureLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading texture file %s: %w", path, err)
	}

	// Trailing blank lines are tolerated; interior ones fail the width check.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("texture file %s contains no rows", path)
	}

	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if got := utf8.RuneCountInString(l); got != width {
			return nil, fmt.Errorf("texture file %s line %d has inconsistent width: expected %d, got %d", path, i+1, width, got)
		}
	}
	return lines, nil
}

// LoadWallTexture reads a wall texture: a grid of shade digits 0-9 that
// offset the distance shading of textured walls.
func LoadWallTexture(path string) (*WallTexture, error) {
	lines, err := readTextureLines(path)
	if err != nil {
		return nil, err
	}

	cells := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for _, r := range line {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("wall texture %s line %d: invalid shade %q, want digit 0-9", path, y+1, r)
			}
			row = append(row, int(r-'0'))
		}
		cells[y] = row
	}
	return &WallTexture{cells: cells, width: len(cells[0]), height: len(cells)}, nil
}

// LoadSpriteTexture reads a sprite texture: a grid of glyphs painted as-is,
// with TransparentRune cells left open.
func LoadSpriteTexture(path string) (*SpriteTexture, error) {
	lines, err := readTextureLines(path)
	if err != nil {
		return nil, err
	}

	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(line)
	}
	return &SpriteTexture{cells: cells, width: len(cells[0]), height: len(cells)}, nil
}
