package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gloomcast/internal/mathutil"
)

// spriteRecord mirrors one entry of a .sprites file.
type spriteRecord struct {
	Pos          [2]float64 `json:"pos"`
	TextureIndex int        `json:"texture_index"`
}

// LoadSprites reads the sprite list for a map: a JSON array of world
// positions and sprite texture indices. File order is preserved. A map
// without a sprite file is a map without sprites, not an error.
func LoadSprites(path string) ([]*Sprite, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite file %s: %w", path, err)
	}

	var records []spriteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse sprite file %s: %w", path, err)
	}

	sprites := make([]*Sprite, 0, len(records))
	for _, rec := range records {
		sprites = append(sprites, &Sprite{
			Pos: mathutil.Vec2{X: rec.Pos[0], Y: rec.Pos[1]},
			Tex: rec.TextureIndex,
		})
	}
	return sprites, nil
}
