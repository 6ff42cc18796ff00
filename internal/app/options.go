// internal/app/options.go
package app

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mole-cannon/internal/defs"
	"mole-cannon/internal/event"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/utils"
)

// Options общие для всех фронтендов параметры запуска.
type Options struct {
	Tuning defs.Tuning
	Seed   int64
	// Logger получает строку на каждое игровое событие; nil отключает журнал.
	Logger *log.Logger
}

// OptionsFromFlags разбирает -seed, -tuning и -verbose и загружает файл настроек.
func OptionsFromFlags(fs *flag.FlagSet, args []string) (Options, error) {
	seed := fs.Int64("seed", 0, "random seed (0 = current time)")
	tuningPath := fs.String("tuning", "", "path to a JSON tuning override")
	verbose := fs.Bool("verbose", false, "log every gameplay event")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	tuning, err := defs.LoadTuning(*tuningPath)
	if err != nil {
		return Options{}, err
	}

	opts := Options{Tuning: tuning, Seed: *seed}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "[event] ", log.Ltime|log.Lmicroseconds)
	}
	return opts, nil
}

// Start создаёт игру на платформе с генератором из opts.Seed и
// подключает журнал событий.
func Start(platform interfaces.Platform, opts Options) *Game {
	rng := utils.NewPRNGService(opts.Seed)
	g := NewGame(platform, opts.Tuning, rng)
	if opts.Logger != nil {
		g.EventDispatcher.SubscribeAll(event.NewLogger(opts.Logger))
	}
	log.Printf("New game started, seed=%d", rng.Seed())
	return g
}
