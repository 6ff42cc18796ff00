package system

import (
	"testing"

	"mole-cannon/internal/component"
	"mole-cannon/internal/event"
	"mole-cannon/pkg/scene"
)

func TestPlayerBallKillsMole(t *testing.T) {
	tests := []struct {
		name string
		kind component.MoleKind
		want int
	}{
		{"normal", component.MoleNormal, 1},
		{"mini", component.MoleMini, 3},
		{"rabbit", component.MoleRabbit, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			NewProgressionSystem(f.world, f.dispatcher)
			s := NewCollisionSystem(f.world, f.dispatcher)
			f.world.Level = 5

			mole := f.world.AddMole(tt.kind, 400, 200)
			ball := f.world.AddCannonball(400, 200, 0, component.FromPlayer)
			s.Update()

			p := f.world.Player
			if p.Score != tt.want {
				t.Fatalf("score = %d, want %d", p.Score, tt.want)
			}
			if p.MolesHitThisLevel != 1 || p.TotalMolesHit != 1 {
				t.Fatalf("hits = %d/%d, want 1/1", p.MolesHitThisLevel, p.TotalMolesHit)
			}
			if len(f.world.Moles) != 0 || len(f.world.Cannonballs) != 0 {
				t.Fatalf("moles = %d, balls = %d, want both removed", len(f.world.Moles), len(f.world.Cannonballs))
			}
			if f.scene.Contains(mole.Visual) || f.scene.Contains(ball.Visual) {
				t.Fatal("visuals must be destroyed")
			}
			if f.world.Level != 5 {
				t.Fatalf("level = %d, want 5", f.world.Level)
			}
		})
	}
}

func TestOneBallKillsOneMole(t *testing.T) {
	f := newFixture(t)
	s := NewCollisionSystem(f.world, f.dispatcher)

	f.world.AddMole(component.MoleNormal, 400, 200)
	f.world.AddMole(component.MoleNormal, 410, 200)
	f.world.AddCannonball(405, 200, 0, component.FromPlayer)
	s.Update()

	if len(f.world.Moles) != 1 {
		t.Fatalf("moles left = %d, want 1", len(f.world.Moles))
	}
	if got := f.count(event.MoleKilled); got != 1 {
		t.Fatalf("MoleKilled events = %d, want 1", got)
	}
}

func TestBallsOnlyHitTheOtherSide(t *testing.T) {
	f := newFixture(t)
	NewProgressionSystem(f.world, f.dispatcher)
	s := NewCollisionSystem(f.world, f.dispatcher)

	f.world.AddMole(component.MoleNormal, 400, 200)
	f.world.AddCannonball(400, 200, 180, component.FromMole)
	f.world.AddCannonball(testCannonX, testCannonTop+30, 0, component.FromPlayer)
	s.Update()

	if len(f.world.Moles) != 1 || len(f.world.Cannonballs) != 2 {
		t.Fatalf("moles = %d, balls = %d, want 1 and 2", len(f.world.Moles), len(f.world.Cannonballs))
	}
	if f.world.Lives != 3 || f.world.Player.Score != 0 {
		t.Fatalf("lives = %d, score = %d, want 3 and 0", f.world.Lives, f.world.Player.Score)
	}
	if len(f.events) != 0 {
		t.Fatalf("events = %v, want none", f.events)
	}
}

func TestMoleBallCostsLife(t *testing.T) {
	f := newFixture(t)
	NewProgressionSystem(f.world, f.dispatcher)
	s := NewCollisionSystem(f.world, f.dispatcher)

	ball := f.world.AddCannonball(testCannonX, testCannonTop+30, 180, component.FromMole)
	s.Update()

	if f.world.Lives != 2 {
		t.Fatalf("lives = %d, want 2", f.world.Lives)
	}
	if f.scene.Contains(ball.Visual) || len(f.world.Cannonballs) != 0 {
		t.Fatal("mole ball must be removed after the hit")
	}
	if f.world.IsOver() {
		t.Fatal("game must go on with lives left")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	f := newFixture(t)
	NewProgressionSystem(f.world, f.dispatcher)
	s := NewCollisionSystem(f.world, f.dispatcher)
	f.world.Lives = 1
	f.world.Player.Score = 7

	f.world.AddCannonball(testCannonX, testCannonTop+30, 180, component.FromMole)
	f.world.AddCannonball(testCannonX, testCannonTop+40, 180, component.FromMole)
	s.Update()

	if f.world.Lives != 0 {
		t.Fatalf("lives = %d, want 0", f.world.Lives)
	}
	if f.world.Phase != component.GameOver {
		t.Fatalf("phase = %v, want GameOver", f.world.Phase)
	}
	if got := f.count(event.GameOver); got != 1 {
		t.Fatalf("GameOver events = %d, want 1", got)
	}
	banner := f.world.HUD.Banner
	if banner == nil || !f.scene.Contains(banner) {
		t.Fatal("final score banner must be shown")
	}
	if got, want := banner.(*scene.Sprite).Text(), "GAME OVER - final score: 7"; got != want {
		t.Fatalf("banner = %q, want %q", got, want)
	}
}

func TestPickupAddsAmmo(t *testing.T) {
	f := newFixture(t)
	s := NewCollisionSystem(f.world, f.dispatcher)

	pickup := f.world.AddPickup(testCannonX)
	far := f.world.AddPickup(100)
	s.Update()

	if f.world.Player.Ammo != 1 {
		t.Fatalf("ammo = %d, want 1", f.world.Player.Ammo)
	}
	if f.scene.Contains(pickup.Visual) {
		t.Fatal("collected pickup must be destroyed")
	}
	if len(f.world.Pickups) != 1 || f.world.Pickups[0] != far {
		t.Fatal("pickup away from the cannon must stay")
	}
}

func TestPickupAtMaxAmmoIsWasted(t *testing.T) {
	f := newFixture(t)
	s := NewCollisionSystem(f.world, f.dispatcher)
	f.world.Player.Ammo = 10

	pickup := f.world.AddPickup(testCannonX)
	s.Update()

	if f.world.Player.Ammo != 10 {
		t.Fatalf("ammo = %d, want 10", f.world.Player.Ammo)
	}
	if f.scene.Contains(pickup.Visual) || len(f.world.Pickups) != 0 {
		t.Fatal("pickup must be destroyed even when ammo is full")
	}
	data, ok := f.events[len(f.events)-1].Data.(event.AmmoCollectedData)
	if !ok || !data.Capped {
		t.Fatalf("last event data = %#v, want capped AmmoCollectedData", f.events[len(f.events)-1].Data)
	}
}
