// internal/system/spawn.go
package system

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/config"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
	"mole-cannon/internal/utils"
)

// SpawnSystem создаёт кротов и патроны. Частота не фиксирована: каждый тик
// бросается кубик, а число живых объектов ограничено уровнем.
type SpawnSystem struct {
	world           *entity.World
	rng             utils.Roller
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng utils.Roller, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update() {
	if len(s.world.Moles) <= s.world.Level && s.rollSpawn() {
		s.spawnMole()
	}
	if len(s.world.Pickups) <= s.world.Level && s.rollSpawn() {
		s.spawnPickup()
	}
}

func (s *SpawnSystem) rollSpawn() bool {
	return s.rng.Roll(config.SpawnRollMin, config.SpawnRollMax) == config.SpawnSentinel
}

func (s *SpawnSystem) spawnMole() {
	kind := component.MoleKindFromRoll(s.rng.Roll(config.MoleKindRollMin, config.MoleKindRollMax))

	// Кроты появляются в небе: между верхним отступом и верхом пушки.
	halfW, halfH := config.MoleWidth/2, config.MoleHeight/2
	minY := config.MoleTopMargin + halfH
	maxY := s.world.Player.Cannon.Y() - config.MoleClearance - halfH
	if maxY < minY {
		maxY = minY
	}
	x := utils.RollFloat(s.rng, halfW, s.world.Width()-halfW)
	y := utils.RollFloat(s.rng, minY, maxY)

	s.world.AddMole(kind, x, y)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MoleSpawned,
		Data: event.MoleSpawnedData{Kind: kind, X: x, Y: y},
	})
}

func (s *SpawnSystem) spawnPickup() {
	halfW := config.AmmoWidth / 2
	x := utils.RollFloat(s.rng, halfW, s.world.Width()-halfW)
	pickup := s.world.AddPickup(x)
	s.eventDispatcher.Dispatch(event.Event{Type: event.AmmoSpawned, Data: int(pickup.ID)})
}
