package system

import (
	"testing"

	"mole-cannon/internal/defs"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
	"mole-cannon/internal/utils"
	"mole-cannon/pkg/scene"
)

// Раскладка по умолчанию на экране 800x600: земля с y=500, пушка
// [388,412]x[440,500], колесо [380,420]x[460,500].
const (
	testCannonX   = 400.0
	testCannonTop = 440.0
)

type fixture struct {
	scene      *scene.Scene
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.SequenceRoller
	events     []event.Event
}

func newFixture(t *testing.T, rolls ...int) *fixture {
	t.Helper()
	return newFixtureWithTuning(t, defs.DefaultTuning(), rolls...)
}

func newFixtureWithTuning(t *testing.T, tuning defs.Tuning, rolls ...int) *fixture {
	t.Helper()
	f := &fixture{
		scene:      scene.NewScene(800, 600),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewSequenceRoller(rolls...),
	}
	f.world = entity.NewWorld(f.scene, tuning)
	f.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		f.events = append(f.events, e)
	}))
	if got := f.world.Player.Cannon.X(); got != testCannonX {
		t.Fatalf("cannon x = %v, want %v", got, testCannonX)
	}
	if got := f.world.Player.Cannon.Y(); got != testCannonTop {
		t.Fatalf("cannon top = %v, want %v", got, testCannonTop)
	}
	return f
}

func (f *fixture) count(eventType event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
