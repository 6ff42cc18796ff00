// cmd/game-term/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mole-cannon/internal/app"
	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/pkg/render/termrender"
	"mole-cannon/pkg/scene"

	"github.com/gdamore/tcell/v2"
)

const gameOverHint = "R - new game, Esc - quit"

// terminalGame ведёт одну сессию в терминале: игру, рендерер и
// восстановление удержания клавиш.
type terminalGame struct {
	screen   tcell.Screen
	opts     app.Options
	game     *app.Game
	renderer *termrender.SceneRenderer
	holds    *termrender.HoldTracker
	wasOver  bool
}

func newTerminalGame(screen tcell.Screen, opts app.Options) *terminalGame {
	g := &terminalGame{
		screen: screen,
		opts:   opts,
		holds:  termrender.NewHoldTracker(config.HoldTimeoutTicks),
	}
	g.restart()
	return g
}

func (g *terminalGame) restart() {
	sc := scene.NewScene(config.ScreenWidth, config.ScreenHeight)
	g.game = app.Start(sc, g.opts)
	g.renderer = termrender.NewSceneRenderer(sc)
	g.holds.Reset()
	g.wasOver = false
}

// handleKey возвращает false, если нужно выйти.
func (g *terminalGame) handleKey(ev *tcell.EventKey) bool {
	action, ok := termrender.ActionForKey(ev)
	if !ok {
		return true
	}
	switch action {
	case termrender.Quit:
		return false
	case termrender.Restart:
		if g.game.IsOver() {
			g.restart()
		}
		return true
	}

	if !g.holds.Press(action) {
		return true // автоповтор
	}
	switch action {
	case termrender.MoveLeft:
		g.game.PressMove(interfaces.Left)
	case termrender.MoveRight:
		g.game.PressMove(interfaces.Right)
	case termrender.RotateLeft:
		g.game.PressRotate(interfaces.Left)
	case termrender.RotateRight:
		g.game.PressRotate(interfaces.Right)
	case termrender.Fire:
		g.game.Fire()
	}
	return true
}

func (g *terminalGame) tick() {
	for _, action := range g.holds.Tick() {
		switch action {
		case termrender.MoveLeft:
			g.game.ReleaseMove(interfaces.Left)
		case termrender.MoveRight:
			g.game.ReleaseMove(interfaces.Right)
		case termrender.RotateLeft:
			g.game.ReleaseRotate(interfaces.Left)
		case termrender.RotateRight:
			g.game.ReleaseRotate(interfaces.Right)
		}
	}

	g.game.Update()

	g.renderer.Draw(g.screen)
	if g.game.IsOver() {
		if !g.wasOver {
			log.Printf("Game over: score=%d level=%d", g.game.FinalScore(), g.game.World.Level)
			g.wasOver = true
		}
		g.renderer.DrawBanner(g.screen, gameOverHint)
	}
	g.screen.Show()
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

func main() {
	logPath := flag.String("log", "mole-cannon-term.log", "log file, the terminal itself is taken by the game")
	opts, err := app.OptionsFromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(fmt.Errorf("failed to open log file: %w", err))
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(fmt.Errorf("failed to create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		log.Fatal(fmt.Errorf("failed to init screen: %w", err))
	}
	defer screen.Fini()

	log.SetOutput(logFile)
	if opts.Logger != nil {
		opts.Logger.SetOutput(logFile)
	}

	newTerminalGame(screen, opts).run()
}
