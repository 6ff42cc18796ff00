// internal/entity/world.go
package entity

import (
	"mole-cannon/internal/component"
	"mole-cannon/internal/config"
	"mole-cannon/internal/defs"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/types"
)

// World: единственный контекст симуляции. Им владеет драйвер тиков,
// системы получают его по указателю и не хранят копий его состояния.
type World struct {
	Platform interfaces.Platform
	Tuning   defs.Tuning
	Tick     uint64
	NextID   types.EntityID

	Ground      interfaces.Visual
	Player      *component.Player
	Moles       []*component.Mole
	Cannonballs []*component.Cannonball
	Pickups     []*component.AmmoPickup

	Lives int
	Level int
	Phase component.Phase
	HUD   component.HUD
}

// NewWorld создаёт землю, игрока и счётчики на платформе.
func NewWorld(platform interfaces.Platform, tuning defs.Tuning) *World {
	w := &World{
		Platform: platform,
		Tuning:   tuning,
		NextID:   1,
		Lives:    tuning.StartingLives,
		Level:    config.StartingLevel,
		Phase:    component.Playing,
	}
	w.Ground = platform.CreateVisual(interfaces.KindGround, 0, w.TopOfGround(), interfaces.AnchorTopLeft)
	w.Player = w.createPlayer()
	w.HUD = w.createHUD()
	return w
}

func (w *World) createPlayer() *component.Player {
	x := w.Width() / 2
	wheel := w.Platform.CreateVisual(interfaces.KindWheel, x, w.TopOfGround(), interfaces.AnchorMidBottom)
	cannon := w.Platform.CreateVisual(interfaces.KindCannon, x, 0, interfaces.AnchorMidTop)
	cannon.SetPosition(x, wheel.Y()-cannon.Height())
	return &component.Player{
		Cannon: cannon,
		Wheel:  wheel,
		Ammo:   w.Tuning.StartingAmmo,
	}
}

func (w *World) createHUD() component.HUD {
	line := func(i int) interfaces.Visual {
		y := float64(config.HUDMarginY + i*config.HUDLineStep)
		return w.Platform.CreateVisual(interfaces.KindText, config.HUDMarginX, y, interfaces.AnchorTopLeft)
	}
	return component.HUD{
		Lives: line(0),
		Ammo:  line(1),
		Level: line(2),
		Score: line(3),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) Width() float64  { return float64(w.Platform.ScreenWidth()) }
func (w *World) Height() float64 { return float64(w.Platform.ScreenHeight()) }

// TopOfGround возвращает y линии земли.
func (w *World) TopOfGround() float64 {
	return w.Height() - config.GroundHeight
}

func (w *World) IsOver() bool {
	return w.Phase == component.GameOver
}

// AddMole создаёт крота вида kind с центром в (x, y).
func (w *World) AddMole(kind component.MoleKind, x, y float64) *component.Mole {
	visual := w.Platform.CreateVisual(kind.VisualKind(), x, y, interfaces.AnchorCenter)
	if scale := kind.Scale(); scale != 1 {
		visual.SetScale(scale, scale)
	}
	mole := &component.Mole{ID: w.NewEntity(), Visual: visual, Kind: kind}
	w.Moles = append(w.Moles, mole)
	return mole
}

// AddPickup кладёт патрон на землю в точке x.
func (w *World) AddPickup(x float64) *component.AmmoPickup {
	visual := w.Platform.CreateVisual(interfaces.KindAmmo, x, w.TopOfGround(), interfaces.AnchorMidBottom)
	pickup := &component.AmmoPickup{ID: w.NewEntity(), Visual: visual}
	w.Pickups = append(w.Pickups, pickup)
	return pickup
}

// AddCannonball запускает ядро из (x, y) под углом angle.
func (w *World) AddCannonball(x, y, angle float64, origin component.Origin) *component.Cannonball {
	visual := w.Platform.CreateVisual(origin.VisualKind(), x, y, interfaces.AnchorCenter)
	visual.SetAngle(angle)
	ball := &component.Cannonball{ID: w.NewEntity(), Visual: visual, Angle: angle, Origin: origin}
	w.Cannonballs = append(w.Cannonballs, ball)
	return ball
}

// RemoveMole уничтожает крота. Возвращает false, если его уже нет.
func (w *World) RemoveMole(id types.EntityID) bool {
	for i, mole := range w.Moles {
		if mole.ID == id {
			w.Platform.DestroyVisual(mole.Visual)
			w.Moles = append(w.Moles[:i], w.Moles[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) RemoveCannonball(id types.EntityID) bool {
	for i, ball := range w.Cannonballs {
		if ball.ID == id {
			w.Platform.DestroyVisual(ball.Visual)
			w.Cannonballs = append(w.Cannonballs[:i], w.Cannonballs[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) RemovePickup(id types.EntityID) bool {
	for i, pickup := range w.Pickups {
		if pickup.ID == id {
			w.Platform.DestroyVisual(pickup.Visual)
			w.Pickups = append(w.Pickups[:i], w.Pickups[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveRabbits убирает всех живых кроликов и возвращает их число.
func (w *World) RemoveRabbits() int {
	kept := w.Moles[:0]
	removed := 0
	for _, mole := range w.Moles {
		if mole.Kind == component.MoleRabbit {
			w.Platform.DestroyVisual(mole.Visual)
			removed++
			continue
		}
		kept = append(kept, mole)
	}
	for i := len(kept); i < len(w.Moles); i++ {
		w.Moles[i] = nil
	}
	w.Moles = kept
	return removed
}
