// internal/interfaces/platform.go
package interfaces

// VisualKind: вид визуального объекта. Платформа сама решает, как его
// нарисовать и какого он размера.
type VisualKind int

const (
	KindGround VisualKind = iota
	KindCannon
	KindWheel
	KindMole
	KindMiniMole
	KindRabbit
	KindPlayerBall
	KindMoleBall
	KindAmmo
	KindText
)

var kindNames = [...]string{
	KindGround:     "ground",
	KindCannon:     "cannon",
	KindWheel:      "wheel",
	KindMole:       "mole",
	KindMiniMole:   "mini-mole",
	KindRabbit:     "rabbit",
	KindPlayerBall: "player-ball",
	KindMoleBall:   "mole-ball",
	KindAmmo:       "ammo",
	KindText:       "text",
}

func (k VisualKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Anchor определяет, к какой точке ограничивающего прямоугольника
// относятся координаты объекта.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorMidTop
	AnchorMidBottom
)

// Visual: непрозрачный дескриптор объекта, созданного платформой.
// Угол в градусах, положительное направление против часовой стрелки.
type Visual interface {
	X() float64
	Y() float64
	SetPosition(x, y float64)
	Angle() float64
	SetAngle(degrees float64)
	SetScale(sx, sy float64)
	SetText(text string)
	Width() float64
	Height() float64
}

// Platform описывает всё, что симуляция требует от слоя отрисовки и ввода.
type Platform interface {
	CreateVisual(kind VisualKind, x, y float64, anchor Anchor) Visual
	DestroyVisual(v Visual)
	Overlaps(a, b Visual) bool
	ScreenWidth() int
	ScreenHeight() int
}
