// pkg/scene/scene.go
package scene

import (
	"mole-cannon/internal/interfaces"
)

// Scene хранит все живые спрайты в порядке создания. Фронтенды
// рисуют Sprites() по порядку, симуляция видит только interfaces.Platform.
type Scene struct {
	width, height int
	sizes         map[interfaces.VisualKind]Size
	sprites       []*Sprite
	nextID        uint64
}

var _ interfaces.Platform = (*Scene)(nil)

// NewScene создаёт пустую сцену с размерами спрайтов по умолчанию.
func NewScene(width, height int) *Scene {
	return NewSceneWithSizes(width, height, DefaultSizes())
}

func NewSceneWithSizes(width, height int, sizes map[interfaces.VisualKind]Size) *Scene {
	return &Scene{
		width:  width,
		height: height,
		sizes:  sizes,
		nextID: 1,
	}
}

func (s *Scene) ScreenWidth() int  { return s.width }
func (s *Scene) ScreenHeight() int { return s.height }

func (s *Scene) CreateVisual(kind interfaces.VisualKind, x, y float64, anchor interfaces.Anchor) interfaces.Visual {
	sprite := &Sprite{
		Kind:   kind,
		Anchor: anchor,
		id:     s.nextID,
		x:      x,
		y:      y,
		sx:     1,
		sy:     1,
		base:   s.sizes[kind],
	}
	s.nextID++
	s.sprites = append(s.sprites, sprite)
	return sprite
}

func (s *Scene) DestroyVisual(v interfaces.Visual) {
	sprite, ok := v.(*Sprite)
	if !ok {
		return
	}
	for i, existing := range s.sprites {
		if existing == sprite {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			return
		}
	}
}

// Overlaps сравнивает ограничивающие прямоугольники. Касание краями не
// считается пересечением, текстовые метки ни с чем не пересекаются.
func (s *Scene) Overlaps(a, b interfaces.Visual) bool {
	sa, okA := a.(*Sprite)
	sb, okB := b.(*Sprite)
	if !okA || !okB || sa == sb {
		return false
	}
	if sa.Kind == interfaces.KindText || sb.Kind == interfaces.KindText {
		return false
	}
	aMinX, aMinY, aMaxX, aMaxY := sa.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := sb.Bounds()
	return aMinX < bMaxX && bMinX < aMaxX && aMinY < bMaxY && bMinY < aMaxY
}

// Sprites возвращает живые спрайты в порядке отрисовки. Срез принадлежит
// сцене и не должен изменяться.
func (s *Scene) Sprites() []*Sprite {
	return s.sprites
}

// Len возвращает число живых спрайтов.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Contains сообщает, жив ли объект.
func (s *Scene) Contains(v interfaces.Visual) bool {
	for _, sprite := range s.sprites {
		if interfaces.Visual(sprite) == v {
			return true
		}
	}
	return false
}
