package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadMap reads a wall grid from a text file: one row per line, one digit
// per cell, 0 for empty space. Blank lines and lines starting with # are
// skipped.
func LoadMap(mapPath string) (*Map, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	var rows [][]int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := make([]int, 0, len(line))
		for _, r := range line {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("map file %s line %d: invalid cell %q, want digit 0-9", mapPath, len(rows)+1, r)
			}
			row = append(row, int(r-'0'))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("map file %s contains no map data", mapPath)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map file %s line %d has inconsistent width: expected %d, got %d", mapPath, i+1, width, len(row))
		}
	}

	return &Map{cells: rows, width: width, height: len(rows)}, nil
}
