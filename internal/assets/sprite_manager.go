package assets

import (
	"fmt"
	_ "image/png"
	"os"
	"path/filepath"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
)

// SpriteManager loads and caches sprite images. Missing files are not an
// error: the renderer draws a procedural shape for any sprite that is nil.
type SpriteManager struct {
	dir     string
	sprites map[string]*ebiten.Image
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{dir: dir, sprites: make(map[string]*ebiten.Image)}
}

// loadSingleSprite loads one file and caches it. It returns the error so
// callers can log it; a failed load leaves no entry.
func (m *SpriteManager) loadSingleSprite(name string) error {
	if _, ok := m.sprites[name]; ok {
		return nil
	}
	path := filepath.Join(m.dir, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sprite %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load sprite %s: %w", path, err)
	}
	m.sprites[name] = img
	return nil
}

// LoadAll loads the ghost faces and every attack's projectile sprite and
// returns how many were found.
func (m *SpriteManager) LoadAll() int {
	names := append([]string{}, defs.GhostSprites[:]...)
	for _, def := range defs.Attacks {
		names = append(names, def.Sprite)
	}
	loaded := 0
	for _, name := range names {
		if err := m.loadSingleSprite(name); err != nil {
			log.Warn().Err(err).Msg("using procedural sprite")
			continue
		}
		loaded++
	}
	log.Info().Int("loaded", loaded).Int("wanted", len(names)).Str("dir", m.dir).Msg("sprites loaded")
	return loaded
}

// Ghost returns the sprite for a face, or nil.
func (m *SpriteManager) Ghost(face component.Face) *ebiten.Image {
	if m == nil || int(face) >= len(defs.GhostSprites) {
		return nil
	}
	return m.sprites[defs.GhostSprites[face]]
}

// Projectile returns the sprite for an attack mode, or nil.
func (m *SpriteManager) Projectile(mode defs.AttackMode) *ebiten.Image {
	if m == nil {
		return nil
	}
	return m.sprites[defs.Attack(mode).Sprite]
}

func (m *SpriteManager) Cleanup() {
	for name, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, name)
	}
}
