// internal/system/collision.go
package system

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
)

// CollisionSystem проверяет пересечения через платформу и применяет их
// последствия. Ядра игрока бьют только кротов, ядра кротов только пушку.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CollisionSystem) Update() {
	s.resolveMoleHits()
	s.resolvePlayerHits()
	s.resolvePickups()
}

func (s *CollisionSystem) resolveMoleHits() {
	platform := s.world.Platform
	balls := append([]*component.Cannonball(nil), s.world.Cannonballs...)

	for _, ball := range balls {
		if ball.Origin != component.FromPlayer {
			continue
		}
		for _, mole := range s.world.Moles {
			if !platform.Overlaps(ball.Visual, mole.Visual) {
				continue
			}
			kind := mole.Kind
			s.world.RemoveCannonball(ball.ID)
			s.world.RemoveMole(mole.ID)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.MoleKilled,
				Data: event.MoleKilledData{Kind: kind},
			})
			break
		}
	}
}

func (s *CollisionSystem) resolvePlayerHits() {
	platform := s.world.Platform
	cannon := s.world.Player.Cannon
	balls := append([]*component.Cannonball(nil), s.world.Cannonballs...)

	for _, ball := range balls {
		if s.world.IsOver() {
			return
		}
		if ball.Origin != component.FromMole || !platform.Overlaps(ball.Visual, cannon) {
			continue
		}
		s.world.RemoveCannonball(ball.ID)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
	}
}

func (s *CollisionSystem) resolvePickups() {
	platform := s.world.Platform
	player := s.world.Player
	pickups := append([]*component.AmmoPickup(nil), s.world.Pickups...)

	for _, pickup := range pickups {
		if !platform.Overlaps(pickup.Visual, player.Cannon) {
			continue
		}
		s.world.RemovePickup(pickup.ID)

		// Сверх максимума патрон просто пропадает.
		capped := player.Ammo >= s.world.Tuning.MaxAmmo
		if !capped {
			player.Ammo++
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AmmoCollected,
			Data: event.AmmoCollectedData{Ammo: player.Ammo, Capped: capped},
		})
	}
}
