// internal/event/types.go
package event

import "mole-cannon/internal/component"

const (
	MoleSpawned     EventType = "MoleSpawned"
	AmmoSpawned     EventType = "AmmoSpawned"
	CannonballFired EventType = "CannonballFired"
	MoleKilled      EventType = "MoleKilled"
	PlayerHit       EventType = "PlayerHit"
	AmmoCollected   EventType = "AmmoCollected"
	LevelUp         EventType = "LevelUp"
	GameOver        EventType = "GameOver"
)

// MoleKilledData: крот уже удалён из мира, Kind нужен для начисления очков.
type MoleKilledData struct {
	Kind component.MoleKind
}

type MoleSpawnedData struct {
	Kind component.MoleKind
	X, Y float64
}

type CannonballFiredData struct {
	Origin component.Origin
	Angle  float64
}

type AmmoCollectedData struct {
	Ammo   int
	Capped bool // патрон ушёл в никуда: запас уже был полон
}

type LevelUpData struct {
	Level          int
	RabbitsCleared int
}

type GameOverData struct {
	Score int
	Level int
}
