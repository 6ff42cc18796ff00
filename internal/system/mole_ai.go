// internal/system/mole_ai.go
package system

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
	"mole-cannon/internal/utils"
)

// MoleAISystem поворачивает кротов к пушке и изредка стреляет в ответ.
// Спрайт крота смотрит вниз при нулевом угле, поэтому угол поворота
// противоположен направлению на пушку, а выстрел идёт в обратную сторону.
type MoleAISystem struct {
	world           *entity.World
	rng             utils.Roller
	eventDispatcher *event.Dispatcher
}

func NewMoleAISystem(world *entity.World, rng utils.Roller, eventDispatcher *event.Dispatcher) *MoleAISystem {
	return &MoleAISystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *MoleAISystem) Update() {
	targetX, targetY := s.target()

	// Выстрелы добавляют ядра, но не кротов, так что обход безопасен.
	for _, mole := range s.world.Moles {
		facing := FacingAngle(mole.Visual.X(), mole.Visual.Y(), targetX, targetY)
		mole.Visual.SetAngle(facing)

		if !mole.Kind.CanFire() {
			continue
		}
		if s.rng.Roll(1, s.world.Tuning.MoleFireRange) > s.world.Level {
			continue
		}
		angle := utils.NormalizeDegrees(facing + 180)
		s.world.AddCannonball(mole.Visual.X(), mole.Visual.Y(), angle, component.FromMole)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CannonballFired,
			Data: event.CannonballFiredData{Origin: component.FromMole, Angle: angle},
		})
	}
}

// target возвращает центр пушки.
func (s *MoleAISystem) target() (float64, float64) {
	cannon := s.world.Player.Cannon
	return cannon.X(), cannon.Y() + cannon.Height()/2
}

// FacingAngle возвращает угол поворота спрайта в (x, y), смотрящего на
// (targetX, targetY). Результат в [0, 360).
func FacingAngle(x, y, targetX, targetY float64) float64 {
	return utils.HeadingAngle(x-targetX, y-targetY)
}
