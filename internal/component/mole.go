// internal/component/mole.go
package component

import (
	"mole-cannon/internal/config"
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/types"
)

// MoleKind задаётся при появлении и больше не меняется.
type MoleKind int

const (
	MoleNormal MoleKind = iota
	MoleMini
	MoleRabbit
)

// MoleKindFromRoll выбирает вид по броску из [MoleKindRollMin, MoleKindRollMax].
func MoleKindFromRoll(roll int) MoleKind {
	switch roll {
	case config.MiniMoleRoll:
		return MoleMini
	case config.RabbitRoll:
		return MoleRabbit
	default:
		return MoleNormal
	}
}

func (k MoleKind) String() string {
	switch k {
	case MoleMini:
		return "mini"
	case MoleRabbit:
		return "rabbit"
	default:
		return "normal"
	}
}

// ScoreDelta возвращает изменение счёта за попадание.
func (k MoleKind) ScoreDelta() int {
	switch k {
	case MoleMini:
		return config.ScoreMini
	case MoleRabbit:
		return config.ScoreRabbit
	default:
		return config.ScoreNormal
	}
}

// CanFire: кролики не стреляют.
func (k MoleKind) CanFire() bool {
	return k != MoleRabbit
}

func (k MoleKind) Scale() float64 {
	if k == MoleMini {
		return config.MiniMoleScale
	}
	return 1
}

func (k MoleKind) VisualKind() interfaces.VisualKind {
	switch k {
	case MoleMini:
		return interfaces.KindMiniMole
	case MoleRabbit:
		return interfaces.KindRabbit
	default:
		return interfaces.KindMole
	}
}

// Mole представляет цель в небе над землёй.
type Mole struct {
	ID     types.EntityID
	Visual interfaces.Visual
	Kind   MoleKind
}
