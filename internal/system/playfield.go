package system

import (
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/utils"
)

// Playfield is the size of the play area in pixels. Frontends update it on
// resize; systems read it whenever they need layout.
type Playfield struct {
	W, H     float64
	ActionsH float64
}

func DefaultPlayfield() *Playfield {
	return &Playfield{W: config.ScreenWidth, H: config.ScreenHeight, ActionsH: config.ActionsHeight}
}

// ThrowOrigin is the bottom-centre point every projectile starts from.
func (p *Playfield) ThrowOrigin() (float64, float64) {
	return p.W / 2, p.H - config.ThrowOriginInset
}

func (p *Playfield) ProjectileSize() float64 {
	return utils.Clamp(p.W*config.ProjectileSizeFactor, config.ProjectileMinSize, config.ProjectileMaxSize)
}

func (p *Playfield) BaseGhostWidth() float64 {
	return utils.Clamp(p.W*config.GhostWidthFactor, config.GhostMinWidth, config.GhostMaxWidth)
}
