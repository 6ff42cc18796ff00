package system

import (
	"math"
	"testing"

	"mole-cannon/internal/component"
	"mole-cannon/internal/event"
	"mole-cannon/internal/utils"
)

func TestFacingAngle(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		tx, ty     float64
		wantFacing float64
	}{
		{"above", 400, 100, 400, 470, 0},
		{"left", 100, 470, 400, 470, 90},
		{"below", 400, 500, 400, 100, 180},
		{"right", 700, 470, 400, 470, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FacingAngle(tt.x, tt.y, tt.tx, tt.ty)
			if got < 0 || got >= 360 {
				t.Fatalf("facing = %v, want within [0, 360)", got)
			}
			if angleDiff(got, tt.wantFacing) > 1e-9 {
				t.Fatalf("facing = %v, want %v", got, tt.wantFacing)
			}
		})
	}
}

func TestMoleFiresTowardCannon(t *testing.T) {
	f := newFixture(t, 1)
	s := NewMoleAISystem(f.world, f.rng, f.dispatcher)
	mole := f.world.AddMole(component.MoleNormal, 200, 150)

	s.Update()

	if len(f.world.Cannonballs) != 1 {
		t.Fatalf("cannonballs = %d, want 1", len(f.world.Cannonballs))
	}
	ball := f.world.Cannonballs[0]
	if ball.Origin != component.FromMole {
		t.Fatalf("origin = %v, want FromMole", ball.Origin)
	}
	if ball.Visual.X() != mole.Visual.X() || ball.Visual.Y() != mole.Visual.Y() {
		t.Fatal("mole ball must start at the mole")
	}

	dx, dy := utils.HeadingVector(ball.Angle, 1)
	tx, ty := testCannonX-200, testCannonTop+30-150
	n := math.Hypot(tx, ty)
	if math.Abs(dx-tx/n) > 1e-9 || math.Abs(dy-ty/n) > 1e-9 {
		t.Fatalf("heading = (%v, %v), want (%v, %v)", dx, dy, tx/n, ty/n)
	}
	if want := utils.NormalizeDegrees(mole.Visual.Angle() + 180); angleDiff(ball.Angle, want) > 1e-9 {
		t.Fatalf("ball angle = %v, want facing+180 = %v", ball.Angle, want)
	}
	if got := f.count(event.CannonballFired); got != 1 {
		t.Fatalf("CannonballFired events = %d, want 1", got)
	}
}

func TestRabbitsNeverFire(t *testing.T) {
	f := newFixture(t, 1, 1)
	s := NewMoleAISystem(f.world, f.rng, f.dispatcher)
	rabbit := f.world.AddMole(component.MoleRabbit, 400, 100)

	s.Update()

	if len(f.world.Cannonballs) != 0 {
		t.Fatal("rabbit fired")
	}
	if f.rng.Calls() != 0 {
		t.Fatalf("rolls = %d, want none for a rabbit", f.rng.Calls())
	}
	if angleDiff(rabbit.Visual.Angle(), 0) > 1e-9 {
		t.Fatalf("rabbit above the cannon faces %v, want 0", rabbit.Visual.Angle())
	}
}

func TestFireChanceFollowsLevel(t *testing.T) {
	f := newFixture(t, 2, 2)
	s := NewMoleAISystem(f.world, f.rng, f.dispatcher)
	f.world.AddMole(component.MoleMini, 400, 100)

	s.Update()
	if len(f.world.Cannonballs) != 0 {
		t.Fatal("roll 2 must not fire at level 1")
	}

	f.world.Level = 2
	s.Update()
	if len(f.world.Cannonballs) != 1 {
		t.Fatal("roll 2 must fire at level 2")
	}
}

// angleDiff возвращает расстояние между углами по окружности.
func angleDiff(a, b float64) float64 {
	return math.Abs(math.Mod(a-b+540, 360) - 180)
}
