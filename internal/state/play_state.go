// internal/state/play_state.go
package state

import (
	"mole-cannon/internal/app"
	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/pkg/render/ebitenrender"
	"mole-cannon/pkg/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Стрелки двигают пушку, A/D и Q/E поворачивают ствол. Огонь на пробеле.
var (
	moveKeys = map[ebiten.Key]interfaces.Direction{
		ebiten.KeyArrowLeft:  interfaces.Left,
		ebiten.KeyArrowRight: interfaces.Right,
	}
	rotateKeys = map[ebiten.Key]interfaces.Direction{
		ebiten.KeyA: interfaces.Left,
		ebiten.KeyQ: interfaces.Left,
		ebiten.KeyD: interfaces.Right,
		ebiten.KeyE: interfaces.Right,
	}
)

// PlayState: идёт игра
type PlayState struct {
	sm       *StateMachine
	opts     app.Options
	scene    *scene.Scene
	game     *app.Game
	renderer *ebitenrender.SceneRenderer
}

func NewPlayState(sm *StateMachine, opts app.Options) *PlayState {
	sc := scene.NewScene(config.ScreenWidth, config.ScreenHeight)
	return &PlayState{
		sm:       sm,
		opts:     opts,
		scene:    sc,
		game:     app.Start(sc, opts),
		renderer: ebitenrender.NewSceneRenderer(sc),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() error {
	s.handleInput()
	s.game.Update()

	if s.game.IsOver() {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
	return nil
}

func (s *PlayState) handleInput() {
	for key, dir := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.game.PressMove(dir)
		}
		if inpututil.IsKeyJustReleased(key) {
			s.game.ReleaseMove(dir)
		}
	}
	for key, dir := range rotateKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.game.PressRotate(dir)
		}
		if inpututil.IsKeyJustReleased(key) {
			s.game.ReleaseRotate(dir)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.Fire()
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}

func (s *PlayState) Exit() {}
