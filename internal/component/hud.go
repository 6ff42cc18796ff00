// internal/component/hud.go
package component

import "mole-cannon/internal/interfaces"

// HUD хранит текстовые счётчики в углу экрана.
type HUD struct {
	Lives  interfaces.Visual
	Ammo   interfaces.Visual
	Level  interfaces.Visual
	Score  interfaces.Visual
	Banner interfaces.Visual // итоговый счёт, появляется после GameOver
}
