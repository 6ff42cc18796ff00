package system

import (
	"testing"

	"mole-cannon/internal/component"
	"mole-cannon/internal/config"
	"mole-cannon/internal/event"
	"mole-cannon/internal/utils"
)

func TestSpawnMoleOnSentinel(t *testing.T) {
	// бросок спавна, вид, x, y, затем бросок спавна патрона мимо
	f := newFixture(t, config.SpawnSentinel, config.MiniMoleRoll, 100, 120, 50)
	s := NewSpawnSystem(f.world, f.rng, f.dispatcher)

	s.Update()

	if len(f.world.Moles) != 1 {
		t.Fatalf("moles = %d, want 1", len(f.world.Moles))
	}
	if len(f.world.Pickups) != 0 {
		t.Fatalf("pickups = %d, want 0", len(f.world.Pickups))
	}
	mole := f.world.Moles[0]
	if mole.Kind != component.MoleMini {
		t.Fatalf("kind = %v, want mini", mole.Kind)
	}
	if mole.Visual.X() != 100 || mole.Visual.Y() != 120 {
		t.Fatalf("mole at (%v, %v), want (100, 120)", mole.Visual.X(), mole.Visual.Y())
	}
	if got := mole.Visual.Width(); got != config.MoleWidth*config.MiniMoleScale {
		t.Fatalf("mini mole width = %v, want half size", got)
	}
	if f.count(event.MoleSpawned) != 1 {
		t.Fatalf("MoleSpawned events = %d, want 1", f.count(event.MoleSpawned))
	}
}

func TestSpawnPickupOnGroundLine(t *testing.T) {
	f := newFixture(t, 7, config.SpawnSentinel, 250)
	s := NewSpawnSystem(f.world, f.rng, f.dispatcher)

	s.Update()

	if len(f.world.Moles) != 0 || len(f.world.Pickups) != 1 {
		t.Fatalf("moles = %d, pickups = %d, want 0 and 1", len(f.world.Moles), len(f.world.Pickups))
	}
	pickup := f.world.Pickups[0]
	if pickup.Visual.X() != 250 || pickup.Visual.Y() != f.world.TopOfGround() {
		t.Fatalf("pickup at (%v, %v), want (250, %v)", pickup.Visual.X(), pickup.Visual.Y(), f.world.TopOfGround())
	}
}

func TestNoSpawnWithoutSentinel(t *testing.T) {
	f := newFixture(t)
	s := NewSpawnSystem(f.world, f.rng, f.dispatcher)

	for i := 0; i < 1000; i++ {
		s.Update()
	}
	if len(f.world.Moles) != 0 || len(f.world.Pickups) != 0 {
		t.Fatalf("moles = %d, pickups = %d, want none", len(f.world.Moles), len(f.world.Pickups))
	}
}

func TestSpawnSkipsRollAboveThrottle(t *testing.T) {
	f := newFixture(t, config.SpawnSentinel, 300)
	f.world.AddMole(component.MoleNormal, 100, 100)
	f.world.AddMole(component.MoleNormal, 200, 100)
	s := NewSpawnSystem(f.world, f.rng, f.dispatcher)

	s.Update()

	if len(f.world.Moles) != 2 {
		t.Fatalf("moles = %d, want 2", len(f.world.Moles))
	}
	if len(f.world.Pickups) != 1 {
		t.Fatalf("pickups = %d, want 1", len(f.world.Pickups))
	}
	if f.rng.Calls() != 2 {
		t.Fatalf("rolls = %d, want 2 (no mole roll above the throttle)", f.rng.Calls())
	}
}

func TestSpawnNeverExceedsLevelPlusOne(t *testing.T) {
	for _, level := range []int{1, 2, 5} {
		f := newFixture(t)
		f.world.Level = level
		for i := 0; i < 10000; i++ {
			f.rng.Push(config.SpawnSentinel)
		}
		s := NewSpawnSystem(f.world, f.rng, f.dispatcher)

		for tick := 0; tick < 200; tick++ {
			s.Update()
			if len(f.world.Moles) > level+1 || len(f.world.Pickups) > level+1 {
				t.Fatalf("level %d tick %d: moles = %d, pickups = %d", level, tick, len(f.world.Moles), len(f.world.Pickups))
			}
		}
		if len(f.world.Moles) != level+1 || len(f.world.Pickups) != level+1 {
			t.Fatalf("level %d: moles = %d, pickups = %d, want %d each", level, len(f.world.Moles), len(f.world.Pickups), level+1)
		}
	}
}

func TestSpawnedMolesStayInSkyBand(t *testing.T) {
	f := newFixture(t)
	f.world.Level = 1000
	rng := utils.NewPRNGService(99)
	s := NewSpawnSystem(f.world, rng, f.dispatcher)

	for i := 0; i < 20000; i++ {
		s.Update()
	}
	if len(f.world.Moles) == 0 {
		t.Fatal("expected some moles after 20000 ticks")
	}
	for _, mole := range f.world.Moles {
		x, y := mole.Visual.X(), mole.Visual.Y()
		if x < config.MoleWidth/2 || x > 800-config.MoleWidth/2 {
			t.Fatalf("mole x = %v out of screen", x)
		}
		if y < config.MoleTopMargin || y > testCannonTop-config.MoleClearance {
			t.Fatalf("mole y = %v outside the sky band", y)
		}
	}
}

func TestSpawnRollRate(t *testing.T) {
	f := newFixture(t)
	s := NewSpawnSystem(f.world, utils.NewPRNGService(2024), f.dispatcher)

	hits := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if s.rollSpawn() {
			hits++
		}
	}
	// ожидается около 1000
	if hits < 850 || hits > 1150 {
		t.Fatalf("spawn roll succeeded %d times out of %d, want about 1%%", hits, draws)
	}
}
