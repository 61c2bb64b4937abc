// Command map_viewer prints an overhead view of a map and its sprite
// placements, for checking edited assets without starting the renderer.
//
//	go run ./assets/map_viewer [-config config.yaml] [mapname]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gloomcast/internal/config"
	"gloomcast/internal/world"
)

const (
	markEmpty  = '.'
	markSprite = '*'
	markSpawn  = '@'
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the game config")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)

	assets := cfg.Assets
	if flag.NArg() > 0 {
		assets.Map = flag.Arg(0)
	}

	wld, err := world.LoadWorld(assets)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	fmt.Printf("%s: %dx%d cells, %d sprites, %d wall textures, %d sprite textures\n\n",
		assets.Map, wld.Map.Width(), wld.Map.Height(),
		len(wld.Sprites), len(wld.WallTextures), len(wld.SpriteTextures))

	for _, line := range overhead(wld, cfg.Camera.Position) {
		fmt.Println(line)
	}

	fmt.Println("\nwalls: digit = cell value (texture index = value-1)")
	fmt.Printf("%c empty  %c sprite  %c camera spawn\n", markEmpty, markSprite, markSpawn)

	warn := placementWarnings(wld, cfg.Camera.Position)
	for _, w := range warn {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(warn) > 0 {
		os.Exit(1)
	}
}

// overhead sketches the map top-down: wall cells keep their digit so the
// texture assignment stays visible, sprites and the spawn overwrite it.
func overhead(wld *world.World, spawn [2]float64) []string {
	rows := make([][]rune, wld.Map.Height())
	for y := range rows {
		row := make([]rune, wld.Map.Width())
		for x := range row {
			if c := wld.Map.At(x, y); c != world.CellEmpty {
				row[x] = rune('0' + c)
			} else {
				row[x] = markEmpty
			}
		}
		rows[y] = row
	}

	for _, s := range wld.Sprites {
		x, y := int(s.Pos.X), int(s.Pos.Y)
		if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
			rows[y][x] = markSprite
		}
	}

	sx, sy := int(spawn[0]), int(spawn[1])
	if sy >= 0 && sy < len(rows) && sx >= 0 && sx < len(rows[sy]) {
		rows[sy][sx] = markSpawn
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		lines[y] = string(row)
	}
	return lines
}

// placementWarnings flags positions the game would reject or render oddly:
// anything standing inside a wall cell or off the grid.
func placementWarnings(wld *world.World, spawn [2]float64) []string {
	var warn []string
	if wld.Map.IsWall(int(spawn[0]), int(spawn[1])) {
		warn = append(warn, fmt.Sprintf("camera spawn (%.1f, %.1f) is inside a wall", spawn[0], spawn[1]))
	}
	for i, s := range wld.Sprites {
		if wld.Map.IsWall(int(s.Pos.X), int(s.Pos.Y)) {
			warn = append(warn, fmt.Sprintf("sprite %d at (%.1f, %.1f) is inside a wall", i, s.Pos.X, s.Pos.Y))
		}
	}
	return warn
}
