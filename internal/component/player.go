// internal/component/player.go
package component

import "mole-cannon/internal/interfaces"

// Player хранит пушку игрока, её колесо, удерживаемые клавиши и счётчики.
type Player struct {
	Cannon interfaces.Visual
	Wheel  interfaces.Visual

	MovingLeft    bool
	MovingRight   bool
	RotatingLeft  bool
	RotatingRight bool

	Ammo              int // всегда в [0, MaxAmmo]
	Score             int
	MolesHitThisLevel int
	TotalMolesHit     int
}
