// internal/system/projectile.go
package system

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/utils"
)

// ProjectileSystem двигает ядра по прямой и убирает улетевшие за экран.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	speed := s.world.Tuning.CannonballSpeed
	width, height := s.world.Width(), s.world.Height()

	kept := s.world.Cannonballs[:0]
	for _, ball := range s.world.Cannonballs {
		dx, dy := utils.HeadingVector(ball.Angle, speed)
		x, y := ball.Visual.X()+dx, ball.Visual.Y()+dy
		ball.Visual.SetPosition(x, y)

		if x < 0 || x > width || y < 0 || y > height {
			s.world.Platform.DestroyVisual(ball.Visual)
			continue
		}
		kept = append(kept, ball)
	}
	clearTail(s.world.Cannonballs, len(kept))
	s.world.Cannonballs = kept
}

// clearTail обнуляет хвост среза после фильтрации на месте.
func clearTail(balls []*component.Cannonball, from int) {
	for i := from; i < len(balls); i++ {
		balls[i] = nil
	}
}
