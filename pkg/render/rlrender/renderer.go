// pkg/render/rlrender/renderer.go
package rlrender

import (
	"image/color"

	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/utils"
	"mole-cannon/pkg/render"
	"mole-cannon/pkg/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneRenderer рисует спрайты сцены средствами raylib. Вызывать между
// rl.BeginDrawing и rl.EndDrawing.
type SceneRenderer struct {
	scene  *scene.Scene
	colors render.KindColors
}

func NewSceneRenderer(sc *scene.Scene) *SceneRenderer {
	return &SceneRenderer{
		scene:  sc,
		colors: render.DefaultKindColors(),
	}
}

func (r *SceneRenderer) Draw() {
	rl.ClearBackground(colorToRL(config.BackgroundColor))
	for _, sprite := range r.scene.Sprites() {
		switch {
		case sprite.Kind == interfaces.KindText:
			r.drawText(sprite, colorToRL(r.colors.Of(interfaces.KindText)))
		case render.IsRound(sprite.Kind):
			r.drawRound(sprite)
		default:
			r.drawBox(sprite)
		}
	}
}

// DrawBanner затемняет экран и повторяет поверх текст сцены и подсказку.
func (r *SceneRenderer) DrawBanner(hint string) {
	w, h := int32(r.scene.ScreenWidth()), int32(r.scene.ScreenHeight())
	rl.DrawRectangle(0, 0, w, h, colorToRL(config.GameOverColor))
	for _, sprite := range r.scene.Sprites() {
		if sprite.Kind == interfaces.KindText {
			r.drawText(sprite, rl.White)
		}
	}
	textWidth := rl.MeasureText(hint, config.TextHeight)
	rl.DrawText(hint, (w-textWidth)/2, h/2+2*config.HUDLineStep, config.TextHeight, rl.White)
}

func (r *SceneRenderer) drawBox(sprite *scene.Sprite) {
	w, h := float32(sprite.Width()), float32(sprite.Height())
	if w == 0 || h == 0 {
		return
	}
	cx, cy := sprite.Center()
	rec := rl.NewRectangle(float32(cx), float32(cy), w, h)
	// raylib вращает по часовой стрелке, игровой угол растёт против неё.
	rl.DrawRectanglePro(rec, rl.NewVector2(w/2, h/2), float32(-sprite.Angle()), colorToRL(r.colors.Of(sprite.Kind)))
}

func (r *SceneRenderer) drawRound(sprite *scene.Sprite) {
	cx, cy := sprite.Center()
	radius := float32(sprite.Width() / 2)
	fill := r.colors.Of(sprite.Kind)
	rl.DrawCircle(int32(cx), int32(cy), radius, colorToRL(fill))
	if sprite.Kind == interfaces.KindWheel {
		dark := colorToRL(render.DarkenColor(fill))
		rl.DrawCircleLines(int32(cx), int32(cy), radius, dark)
		dx, dy := utils.HeadingVector(sprite.Angle(), float64(radius))
		rl.DrawLineEx(rl.NewVector2(float32(cx), float32(cy)), rl.NewVector2(float32(cx+dx), float32(cy+dy)), 2, dark)
	}
}

func (r *SceneRenderer) drawText(sprite *scene.Sprite, clr rl.Color) {
	minX, minY, _, _ := sprite.Bounds()
	rl.DrawText(sprite.Text(), int32(minX), int32(minY), config.TextHeight, clr)
}

// colorToRL переводит color.Color в rl.Color.
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
