// pkg/render/termrender/renderer.go
package termrender

import (
	"image/color"
	"math"

	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/utils"
	"mole-cannon/pkg/render"
	"mole-cannon/pkg/scene"

	"github.com/gdamore/tcell/v2"
)

// Символы, которыми закрашиваются клетки спрайтов.
var kindRunes = map[interfaces.VisualKind]rune{
	interfaces.KindGround:     '▒',
	interfaces.KindCannon:     '█',
	interfaces.KindWheel:      'O',
	interfaces.KindMole:       'M',
	interfaces.KindMiniMole:   'm',
	interfaces.KindRabbit:     'R',
	interfaces.KindPlayerBall: '*',
	interfaces.KindMoleBall:   '•',
	interfaces.KindAmmo:       '+',
}

// SceneRenderer выводит сцену в терминал, масштабируя экранные
// координаты в клетки. Текст не масштабируется.
type SceneRenderer struct {
	scene  *scene.Scene
	colors render.KindColors
	bg     tcell.Style
}

func NewSceneRenderer(sc *scene.Scene) *SceneRenderer {
	return &SceneRenderer{
		scene:  sc,
		colors: render.DefaultKindColors(),
		bg:     tcell.StyleDefault.Background(toTcell(config.BackgroundColor)),
	}
}

// Draw рисует сцену. Show вызывает вызывающий.
func (r *SceneRenderer) Draw(screen tcell.Screen) {
	screen.Fill(' ', r.bg)
	cols, rows := screen.Size()
	if cols == 0 || rows == 0 {
		return
	}
	sx := float64(cols) / float64(r.scene.ScreenWidth())
	sy := float64(rows) / float64(r.scene.ScreenHeight())

	var texts []*scene.Sprite
	for _, sprite := range r.scene.Sprites() {
		switch sprite.Kind {
		case interfaces.KindText:
			texts = append(texts, sprite)
		case interfaces.KindCannon:
			r.drawBarrel(screen, sprite, sx, sy)
		default:
			r.fillBounds(screen, sprite, sx, sy)
		}
	}

	// Текст поверх всего, строки не налезают друг на друга.
	used := make(map[int]bool)
	style := r.bg.Foreground(toTcell(r.colors.Of(interfaces.KindText)))
	for _, sprite := range texts {
		minX, minY, _, _ := sprite.Bounds()
		row := int(minY * sy)
		for used[row] {
			row++
		}
		used[row] = true
		putString(screen, int(minX*sx), row, sprite.Text(), style)
	}
}

// DrawBanner выводит подсказку под строкой итогового счёта.
func (r *SceneRenderer) DrawBanner(screen tcell.Screen, hint string) {
	cols, rows := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	putString(screen, (cols-len(hint))/2, rows/2+2, hint, style)
}

func (r *SceneRenderer) fillBounds(screen tcell.Screen, sprite *scene.Sprite, sx, sy float64) {
	minX, minY, maxX, maxY := sprite.Bounds()
	c0, c1 := cellSpan(minX, maxX, sx)
	r0, r1 := cellSpan(minY, maxY, sy)
	style := r.bg.Foreground(toTcell(r.colors.Of(sprite.Kind)))
	ch := kindRunes[sprite.Kind]
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// drawBarrel рисует ствол отрезком вдоль угла пушки, чтобы был виден прицел.
func (r *SceneRenderer) drawBarrel(screen tcell.Screen, sprite *scene.Sprite, sx, sy float64) {
	cx, cy := sprite.Center()
	half := sprite.Height() / 2
	step := 1 / math.Max(sx, sy) / 2
	style := r.bg.Foreground(toTcell(r.colors.Of(sprite.Kind)))
	for t := -half; t <= half; t += step {
		dx, dy := utils.HeadingVector(sprite.Angle(), t)
		screen.SetContent(int((cx+dx)*sx), int((cy+dy)*sy), kindRunes[sprite.Kind], nil, style)
	}
}

// cellSpan переводит отрезок [lo, hi) экранных координат в номера клеток.
// Даже самый маленький спрайт занимает одну клетку.
func cellSpan(lo, hi, scale float64) (int, int) {
	first := int(math.Floor(lo * scale))
	last := int(math.Ceil(hi*scale)) - 1
	if last < first {
		last = first
	}
	return first, last
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
