// internal/app/game.go
package app

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/defs"
	"mole-cannon/internal/entity"
	"mole-cannon/internal/event"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/system"
	"mole-cannon/internal/utils"
)

// updateStep is one stage of the per-tick pipeline. Stages marked
// afterGameOver still run on the tick that ends the game.
type updateStep struct {
	name          string
	update        func()
	afterGameOver bool
}

// Game holds the simulation world, its systems and the tick pipeline.
type Game struct {
	World             *entity.World
	EventDispatcher   *event.Dispatcher
	Rng               utils.Roller
	SpawnSystem       *system.SpawnSystem
	MovementSystem    *system.MovementSystem
	ProjectileSystem  *system.ProjectileSystem
	CollisionSystem   *system.CollisionSystem
	ProgressionSystem *system.ProgressionSystem
	MoleAISystem      *system.MoleAISystem
	HUDSystem         *system.HUDSystem

	steps []updateStep
}

var _ interfaces.Game = (*Game)(nil)

// NewGame builds the world on the given platform. This is the "start"
// lifecycle hook: the ground, player and HUD exist once it returns.
func NewGame(platform interfaces.Platform, tuning defs.Tuning, rng utils.Roller) *Game {
	world := entity.NewWorld(platform, tuning)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:            world,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		SpawnSystem:      system.NewSpawnSystem(world, rng, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(world),
		ProjectileSystem: system.NewProjectileSystem(world),
		CollisionSystem:  system.NewCollisionSystem(world, eventDispatcher),
		MoleAISystem:     system.NewMoleAISystem(world, rng, eventDispatcher),
		HUDSystem:        system.NewHUDSystem(world),
	}
	g.ProgressionSystem = system.NewProgressionSystem(world, eventDispatcher)

	// Порядок важен: каждая стадия читает то, что изменили предыдущие.
	g.steps = []updateStep{
		{name: "spawn", update: g.SpawnSystem.Update},
		{name: "movement", update: g.MovementSystem.Update},
		{name: "projectiles", update: g.ProjectileSystem.Update},
		{name: "collision", update: g.CollisionSystem.Update},
		{name: "progression", update: g.ProgressionSystem.Update},
		{name: "mole-ai", update: g.MoleAISystem.Update},
		{name: "hud", update: g.HUDSystem.Update, afterGameOver: true},
	}

	g.HUDSystem.Update()
	return g
}

// Update progresses the simulation by one tick. After GameOver it does nothing.
func (g *Game) Update() {
	if g.World.IsOver() {
		return
	}
	g.World.Tick++
	for _, step := range g.steps {
		if g.World.IsOver() && !step.afterGameOver {
			continue
		}
		step.update()
	}
}

// StepNames returns the pipeline order, for diagnostics.
func (g *Game) StepNames() []string {
	names := make([]string, len(g.steps))
	for i, step := range g.steps {
		names[i] = step.name
	}
	return names
}

// --- Input surface ---

func (g *Game) PressMove(dir interfaces.Direction) {
	p := g.World.Player
	if dir == interfaces.Left {
		p.MovingLeft = true
	} else {
		p.MovingRight = true
	}
}

func (g *Game) ReleaseMove(dir interfaces.Direction) {
	p := g.World.Player
	if dir == interfaces.Left {
		p.MovingLeft = false
	} else {
		p.MovingRight = false
	}
}

// PressRotate starts rotating the cannon unless it already sits at the limit.
func (g *Game) PressRotate(dir interfaces.Direction) {
	p := g.World.Player
	limit := g.World.Tuning.MaxCannonAngle
	angle := p.Cannon.Angle()
	if dir == interfaces.Left {
		if angle < limit {
			p.RotatingLeft = true
		}
		return
	}
	if angle > -limit {
		p.RotatingRight = true
	}
}

func (g *Game) ReleaseRotate(dir interfaces.Direction) {
	p := g.World.Player
	if dir == interfaces.Left {
		p.RotatingLeft = false
	} else {
		p.RotatingRight = false
	}
}

// Fire launches a cannonball from the muzzle if there is ammo left.
func (g *Game) Fire() {
	if g.World.IsOver() {
		return
	}
	p := g.World.Player
	if p.Ammo <= 0 {
		return
	}
	p.Ammo--

	// Пушка вращается вокруг центра, дуло на расстоянии половины длины.
	cannon := p.Cannon
	angle := cannon.Angle()
	cx, cy := cannon.X(), cannon.Y()+cannon.Height()/2
	dx, dy := utils.HeadingVector(angle, cannon.Height()/2)
	g.World.AddCannonball(cx+dx, cy+dy, angle, component.FromPlayer)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.CannonballFired,
		Data: event.CannonballFiredData{Origin: component.FromPlayer, Angle: angle},
	})
}

// --- Public Accessors ---

func (g *Game) IsOver() bool {
	return g.World.IsOver()
}

func (g *Game) FinalScore() int {
	return g.World.Player.Score
}

func (g *Game) Phase() component.Phase {
	return g.World.Phase
}
