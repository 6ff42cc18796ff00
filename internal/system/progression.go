// internal/system/progression.go
package system

import (
	"fmt"

	"mole-cannon/internal/component"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
	"mole-cannon/internal/interfaces"
)

// ProgressionSystem ведёт счёт, уровни и жизни и переводит игру в
// GameOver. Уровень проверяется после каждого сбитого крота.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	ps := &ProgressionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.MoleKilled, ps)
	eventDispatcher.Subscribe(event.PlayerHit, ps)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MoleKilled:
		if data, ok := e.Data.(event.MoleKilledData); ok {
			s.RecordKill(data.Kind)
		}
	case event.PlayerHit:
		s.LoseLife()
	}
}

// Update переводит игру в GameOver, если жизни кончились любым путём.
func (s *ProgressionSystem) Update() {
	if s.world.Phase == component.Playing && s.world.Lives <= 0 {
		s.enterGameOver()
	}
}

func (s *ProgressionSystem) RecordKill(kind component.MoleKind) {
	if s.world.IsOver() {
		return
	}
	p := s.world.Player
	p.MolesHitThisLevel++
	p.TotalMolesHit++
	p.Score += kind.ScoreDelta()
	s.checkLevelUp()
}

func (s *ProgressionSystem) checkLevelUp() {
	p := s.world.Player
	if p.MolesHitThisLevel < s.world.Level {
		return
	}
	s.world.Level++
	p.MolesHitThisLevel = 0

	cleared := 0
	if s.world.Tuning.ClearRabbitsOnLevelUp {
		cleared = s.world.RemoveRabbits()
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.LevelUp,
		Data: event.LevelUpData{Level: s.world.Level, RabbitsCleared: cleared},
	})
}

func (s *ProgressionSystem) LoseLife() {
	if s.world.IsOver() {
		return
	}
	s.world.Lives--
	if s.world.Lives <= 0 {
		s.world.Lives = 0
		s.enterGameOver()
	}
}

func (s *ProgressionSystem) enterGameOver() {
	s.world.Phase = component.GameOver

	message := fmt.Sprintf("GAME OVER - final score: %d", s.world.Player.Score)
	x := (s.world.Width() - float64(len(message)*textCharWidth)) / 2
	banner := s.world.Platform.CreateVisual(interfaces.KindText, x, s.world.Height()/2, interfaces.AnchorTopLeft)
	banner.SetText(message)
	s.world.HUD.Banner = banner

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: s.world.Player.Score, Level: s.world.Level},
	})
}
