// internal/system/movement.go
package system

import (
	"mole-cannon/internal/entity"
)

// MovementSystem двигает и поворачивает пушку по удерживаемым клавишам.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	s.move()
	s.clampToScreen()
	s.rotate()
}

func (s *MovementSystem) move() {
	p := s.world.Player
	step := s.world.Tuning.PlayerStep
	spin := s.world.Tuning.WheelSpinStep

	if p.MovingLeft {
		s.shift(-step)
		p.Wheel.SetAngle(p.Wheel.Angle() + spin)
	}
	if p.MovingRight {
		s.shift(step)
		p.Wheel.SetAngle(p.Wheel.Angle() - spin)
	}
}

func (s *MovementSystem) shift(dx float64) {
	p := s.world.Player
	p.Cannon.SetPosition(p.Cannon.X()+dx, p.Cannon.Y())
	p.Wheel.SetPosition(p.Wheel.X()+dx, p.Wheel.Y())
}

// clampToScreen отпускает клавишу движения у края экрана. Позиция
// прижимается к краю, только если шаг перескочил через него.
func (s *MovementSystem) clampToScreen() {
	p := s.world.Player
	halfW := p.Cannon.Width() / 2
	minX, maxX := halfW, s.world.Width()-halfW

	x := p.Cannon.X()
	if x <= minX {
		p.MovingLeft = false
		s.shift(minX - x)
	} else if x >= maxX {
		p.MovingRight = false
		s.shift(maxX - x)
	}
}

func (s *MovementSystem) rotate() {
	p := s.world.Player
	step := s.world.Tuning.RotationStep
	limit := s.world.Tuning.MaxCannonAngle
	angle := p.Cannon.Angle()

	if p.RotatingLeft {
		next := angle + step
		if next > limit {
			next = limit
			p.RotatingLeft = false
		}
		angle = next
	}
	if p.RotatingRight {
		next := angle - step
		if next < -limit {
			next = -limit
			p.RotatingRight = false
		}
		angle = next
	}
	p.Cannon.SetAngle(angle)
}
