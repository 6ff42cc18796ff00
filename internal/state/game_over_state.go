// internal/state/game_over_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

const gameOverHint = "R - new game, Esc - quit"

// GameOverState показывает замершую сцену с итоговым счётом.
type GameOverState struct {
	sm   *StateMachine
	play *PlayState
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {
	log.Printf("Game over: score=%d level=%d", s.play.game.FinalScore(), s.play.game.World.Level)
}

func (s *GameOverState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewPlayState(s.sm, s.play.opts))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	s.play.renderer.DrawBanner(screen, gameOverHint)
}

func (s *GameOverState) Exit() {}
