// internal/component/projectile.go
package component

import (
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/types"
)

// Origin определяет, кого ядро может поразить.
type Origin int

const (
	FromPlayer Origin = iota // поражает только кротов
	FromMole                 // поражает только пушку игрока
)

func (o Origin) String() string {
	if o == FromMole {
		return "mole"
	}
	return "player"
}

func (o Origin) VisualKind() interfaces.VisualKind {
	if o == FromMole {
		return interfaces.KindMoleBall
	}
	return interfaces.KindPlayerBall
}

// Cannonball летит по прямой под углом, заданным при выстреле.
type Cannonball struct {
	ID     types.EntityID
	Visual interfaces.Visual
	Angle  float64 // игровые градусы: 0 вверх, плюс влево
	Origin Origin
}
