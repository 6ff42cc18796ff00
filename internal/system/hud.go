// internal/system/hud.go
package system

import (
	"fmt"

	"mole-cannon/internal/config"
	"mole-cannon/internal/entity"
)

const textCharWidth = config.TextCharWidth

// HUDSystem переписывает текстовые счётчики из состояния мира.
type HUDSystem struct {
	world *entity.World
}

func NewHUDSystem(world *entity.World) *HUDSystem {
	return &HUDSystem{world: world}
}

func (s *HUDSystem) Update() {
	hud := s.world.HUD
	p := s.world.Player
	hud.Lives.SetText(fmt.Sprintf("Lives: %d", s.world.Lives))
	hud.Ammo.SetText(fmt.Sprintf("Ammo: %d/%d", p.Ammo, s.world.Tuning.MaxAmmo))
	hud.Level.SetText(fmt.Sprintf("Level: %d", s.world.Level))
	hud.Score.SetText(fmt.Sprintf("Score: %d", p.Score))
}
