// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mole-cannon/internal/app"
	"mole-cannon/internal/config"
	"mole-cannon/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает ebiten с машиной состояний. Ebiten вызывает Update
// ровно TicksPerSecond раз в секунду, каждый вызов двигает симуляцию на один тик.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts, err := app.OptionsFromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, opts))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mole Cannon")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
