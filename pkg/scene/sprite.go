// pkg/scene/sprite.go
package scene

import (
	"math"

	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
)

// Size задаёт размер объекта вида до масштабирования.
type Size struct {
	W, H float64
}

// DefaultSizes возвращает размеры спрайтов из config.
func DefaultSizes() map[interfaces.VisualKind]Size {
	return map[interfaces.VisualKind]Size{
		interfaces.KindGround:     {W: config.ScreenWidth, H: config.GroundHeight},
		interfaces.KindCannon:     {W: config.CannonWidth, H: config.CannonHeight},
		interfaces.KindWheel:      {W: config.WheelWidth, H: config.WheelHeight},
		interfaces.KindMole:       {W: config.MoleWidth, H: config.MoleHeight},
		interfaces.KindMiniMole:   {W: config.MoleWidth, H: config.MoleHeight},
		interfaces.KindRabbit:     {W: config.RabbitWidth, H: config.RabbitHeight},
		interfaces.KindPlayerBall: {W: config.BallSize, H: config.BallSize},
		interfaces.KindMoleBall:   {W: config.BallSize, H: config.BallSize},
		interfaces.KindAmmo:       {W: config.AmmoWidth, H: config.AmmoHeight},
	}
}

// Sprite is the scene's implementation of interfaces.Visual.
type Sprite struct {
	Kind   interfaces.VisualKind
	Anchor interfaces.Anchor

	id     uint64
	x, y   float64
	angle  float64
	sx, sy float64
	base   Size
	text   string
}

var _ interfaces.Visual = (*Sprite)(nil)

func (s *Sprite) ID() uint64         { return s.id }
func (s *Sprite) X() float64         { return s.x }
func (s *Sprite) Y() float64         { return s.y }
func (s *Sprite) Angle() float64     { return s.angle }
func (s *Sprite) Text() string       { return s.text }
func (s *Sprite) SetAngle(d float64) { s.angle = d }
func (s *Sprite) SetText(t string)   { s.text = t }

func (s *Sprite) SetPosition(x, y float64) {
	s.x, s.y = x, y
}

func (s *Sprite) SetScale(sx, sy float64) {
	s.sx, s.sy = sx, sy
}

// Scale возвращает текущий масштаб по осям.
func (s *Sprite) Scale() (float64, float64) {
	return s.sx, s.sy
}

func (s *Sprite) Width() float64 {
	if s.Kind == interfaces.KindText {
		return float64(len(s.text) * config.TextCharWidth)
	}
	return s.base.W * math.Abs(s.sx)
}

func (s *Sprite) Height() float64 {
	if s.Kind == interfaces.KindText {
		return config.TextHeight
	}
	return s.base.H * math.Abs(s.sy)
}

// Bounds возвращает ограничивающий прямоугольник без учёта поворота.
func (s *Sprite) Bounds() (minX, minY, maxX, maxY float64) {
	w, h := s.Width(), s.Height()
	switch s.Anchor {
	case interfaces.AnchorTopLeft:
		minX, minY = s.x, s.y
	case interfaces.AnchorMidTop:
		minX, minY = s.x-w/2, s.y
	case interfaces.AnchorMidBottom:
		minX, minY = s.x-w/2, s.y-h
	default:
		minX, minY = s.x-w/2, s.y-h/2
	}
	return minX, minY, minX + w, minY + h
}

// Center возвращает центр ограничивающего прямоугольника.
func (s *Sprite) Center() (float64, float64) {
	minX, minY, maxX, maxY := s.Bounds()
	return (minX + maxX) / 2, (minY + maxY) / 2
}
