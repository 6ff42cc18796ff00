// pkg/render/color.go
package render

import (
	"image/color"

	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
)

// KindColors holds the fill color of every visual kind.
type KindColors map[interfaces.VisualKind]color.RGBA

// DefaultKindColors returns the palette from config.
func DefaultKindColors() KindColors {
	return KindColors{
		interfaces.KindGround:     config.GroundColor,
		interfaces.KindCannon:     config.CannonColor,
		interfaces.KindWheel:      config.WheelColor,
		interfaces.KindMole:       config.MoleColor,
		interfaces.KindMiniMole:   config.MiniMoleColor,
		interfaces.KindRabbit:     config.RabbitColor,
		interfaces.KindPlayerBall: config.PlayerBallColor,
		interfaces.KindMoleBall:   config.MoleBallColor,
		interfaces.KindAmmo:       config.AmmoColor,
		interfaces.KindText:       config.TextColor,
	}
}

// Of returns the color for kind, or the text color for unknown kinds.
func (k KindColors) Of(kind interfaces.VisualKind) color.RGBA {
	if c, ok := k[kind]; ok {
		return c
	}
	return config.TextColor
}

// IsRound reports whether the kind is drawn as a circle instead of a box.
func IsRound(kind interfaces.VisualKind) bool {
	switch kind {
	case interfaces.KindPlayerBall, interfaces.KindMoleBall, interfaces.KindWheel:
		return true
	}
	return false
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
