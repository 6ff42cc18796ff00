// pkg/render/ebitenrender/renderer.go
package ebitenrender

import (
	"image/color"

	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/utils"
	"mole-cannon/pkg/render"
	"mole-cannon/pkg/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// SceneRenderer рисует спрайты сцены средствами ebiten.
type SceneRenderer struct {
	scene    *scene.Scene
	colors   render.KindColors
	fillImg  *ebiten.Image
	fontFace font.Face
}

func NewSceneRenderer(sc *scene.Scene) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		scene:    sc,
		colors:   render.DefaultKindColors(),
		fillImg:  fillImg,
		fontFace: basicfont.Face7x13,
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for _, sprite := range r.scene.Sprites() {
		switch {
		case sprite.Kind == interfaces.KindText:
			r.drawText(screen, sprite)
		case render.IsRound(sprite.Kind):
			r.drawRound(screen, sprite)
		default:
			r.drawBox(screen, sprite)
		}
	}
}

// DrawBanner затемняет сцену и выводит поверх текст сцены и подсказку.
func (r *SceneRenderer) DrawBanner(screen *ebiten.Image, hint string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.GameOverColor, false)
	for _, sprite := range r.scene.Sprites() {
		if sprite.Kind == interfaces.KindText {
			r.drawTextColor(screen, sprite, color.White)
		}
	}
	bounds := text.BoundString(r.fontFace, hint)
	x := (w - bounds.Dx()) / 2
	y := h/2 + 2*config.HUDLineStep
	text.Draw(screen, hint, r.fontFace, x, y, color.White)
}

func (r *SceneRenderer) drawBox(screen *ebiten.Image, sprite *scene.Sprite) {
	w, h := sprite.Width(), sprite.Height()
	if w == 0 || h == 0 {
		return
	}
	cx, cy := sprite.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	// Положительный игровой угол поворачивает против часовой стрелки.
	op.GeoM.Rotate(-utils.Radians(sprite.Angle()))
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(r.colors.Of(sprite.Kind))
	screen.DrawImage(r.fillImg, op)
}

func (r *SceneRenderer) drawRound(screen *ebiten.Image, sprite *scene.Sprite) {
	cx, cy := sprite.Center()
	radius := float32(sprite.Width() / 2)
	fill := r.colors.Of(sprite.Kind)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, fill, true)
	if sprite.Kind == interfaces.KindWheel {
		vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 2, render.DarkenColor(fill), true)
		// Спица показывает вращение колеса.
		dx, dy := utils.HeadingVector(sprite.Angle(), float64(radius))
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+dx), float32(cy+dy), 2, render.DarkenColor(fill), true)
	}
}

func (r *SceneRenderer) drawText(screen *ebiten.Image, sprite *scene.Sprite) {
	r.drawTextColor(screen, sprite, r.colors.Of(interfaces.KindText))
}

func (r *SceneRenderer) drawTextColor(screen *ebiten.Image, sprite *scene.Sprite, clr color.Color) {
	minX, minY, _, _ := sprite.Bounds()
	// text.Draw принимает базовую линию, а не верх строки.
	baseline := int(minY) + r.fontFace.Metrics().Ascent.Ceil()
	text.Draw(screen, sprite.Text(), r.fontFace, int(minX), baseline, clr)
}
