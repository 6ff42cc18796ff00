// cmd/game-rl/main.go
package main

import (
	"flag"
	"log"
	"os"

	"mole-cannon/internal/app"
	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/pkg/render/rlrender"
	"mole-cannon/pkg/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const gameOverHint = "R - new game, Esc - quit"

var (
	moveKeys = map[int32]interfaces.Direction{
		rl.KeyLeft:  interfaces.Left,
		rl.KeyRight: interfaces.Right,
	}
	rotateKeys = map[int32]interfaces.Direction{
		rl.KeyA: interfaces.Left,
		rl.KeyQ: interfaces.Left,
		rl.KeyD: interfaces.Right,
		rl.KeyE: interfaces.Right,
	}
)

// session: одна партия: сцена, игра и её рендерер.
type session struct {
	game     *app.Game
	renderer *rlrender.SceneRenderer
}

func newSession(opts app.Options) *session {
	sc := scene.NewScene(config.ScreenWidth, config.ScreenHeight)
	return &session{
		game:     app.Start(sc, opts),
		renderer: rlrender.NewSceneRenderer(sc),
	}
}

func (s *session) handleInput() {
	for key, dir := range moveKeys {
		if rl.IsKeyPressed(key) {
			s.game.PressMove(dir)
		}
		if rl.IsKeyReleased(key) {
			s.game.ReleaseMove(dir)
		}
	}
	for key, dir := range rotateKeys {
		if rl.IsKeyPressed(key) {
			s.game.PressRotate(dir)
		}
		if rl.IsKeyReleased(key) {
			s.game.ReleaseRotate(dir)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		s.game.Fire()
	}
}

func main() {
	// --- Флаги командной строки ---
	opts, err := app.OptionsFromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Mole Cannon")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	s := newSession(opts)
	wasOver := false
	for !rl.WindowShouldClose() {
		if s.game.IsOver() {
			if !wasOver {
				log.Printf("Game over: score=%d level=%d", s.game.FinalScore(), s.game.World.Level)
				wasOver = true
			}
			if rl.IsKeyPressed(rl.KeyR) {
				s = newSession(opts)
				wasOver = false
			}
		} else {
			s.handleInput()
			s.game.Update()
		}

		rl.BeginDrawing()
		s.renderer.Draw()
		if s.game.IsOver() {
			s.renderer.DrawBanner(gameOverHint)
		}
		rl.EndDrawing()
	}
}
