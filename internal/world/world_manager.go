package world

import (
	"fmt"
	"path/filepath"

	"gloomcast/internal/config"
)

// LoadWorld reads the map, the textures, and the sprite list named by the
// assets config and cross-checks the references between them. Violations
// are load-time errors; the renderer never re-validates.
func LoadWorld(assets config.AssetsConfig) (*World, error) {
	m, err := LoadMap(filepath.Join(assets.Dir, "maps", assets.Map+".map"))
	if err != nil {
		return nil, err
	}

	walls := make([]*WallTexture, 0, len(assets.WallTextures))
	for _, name := range assets.WallTextures {
		tex, err := LoadWallTexture(filepath.Join(assets.Dir, "wall_textures", name+".txt"))
		if err != nil {
			return nil, err
		}
		walls = append(walls, tex)
	}

	spriteTex := make([]*SpriteTexture, 0, len(assets.SpriteTextures))
	for _, name := range assets.SpriteTextures {
		tex, err := LoadSpriteTexture(filepath.Join(assets.Dir, "sprite_textures", name+".txt"))
		if err != nil {
			return nil, err
		}
		spriteTex = append(spriteTex, tex)
	}

	sprites, err := LoadSprites(filepath.Join(assets.Dir, "maps", assets.Map+".sprites"))
	if err != nil {
		return nil, err
	}

	w := &World{Map: m, Sprites: sprites, WallTextures: walls, SpriteTextures: spriteTex}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// validate enforces the texture reference rules. An empty wall texture list
// is legal and simply disables textured walls; sprite textures are always
// sampled, so those references must resolve.
func (w *World) validate() error {
	if max := w.Map.MaxCell(); len(w.WallTextures) > 0 && max > len(w.WallTextures) {
		return fmt.Errorf("map cell value %d needs wall texture %d but only %d are loaded", max, max-1, len(w.WallTextures))
	}
	for i, s := range w.Sprites {
		if s.Tex < 0 || s.Tex >= len(w.SpriteTextures) {
			return fmt.Errorf("sprite %d references sprite texture %d but only %d are loaded", i, s.Tex, len(w.SpriteTextures))
		}
	}
	return nil
}
