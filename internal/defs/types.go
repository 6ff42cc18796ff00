// internal/defs/types.go
package defs

import (
	"fmt"
	"mole-cannon/internal/config"
)

// Tuning хранит игровые числа, которые можно переопределить из JSON-файла.
// Пороговые значения бросков (1 из 100, виды кротов) сюда не входят,
// они фиксированы в config.
type Tuning struct {
	StartingLives         int     `json:"starting_lives"`
	StartingAmmo          int     `json:"starting_ammo"`
	MaxAmmo               int     `json:"max_ammo"`
	PlayerStep            float64 `json:"player_step"`
	WheelSpinStep         float64 `json:"wheel_spin_step"`
	RotationStep          float64 `json:"rotation_step"`
	MaxCannonAngle        float64 `json:"max_cannon_angle"`
	CannonballSpeed       float64 `json:"cannonball_speed"`
	MoleFireRange         int     `json:"mole_fire_range"`
	ClearRabbitsOnLevelUp bool    `json:"clear_rabbits_on_level_up"`
}

// DefaultTuning возвращает значения из config.
func DefaultTuning() Tuning {
	return Tuning{
		StartingLives:         config.StartingLives,
		StartingAmmo:          config.StartingAmmo,
		MaxAmmo:               config.MaxAmmo,
		PlayerStep:            config.PlayerStep,
		WheelSpinStep:         config.WheelSpinStep,
		RotationStep:          config.RotationStep,
		MaxCannonAngle:        config.MaxCannonAngle,
		CannonballSpeed:       config.CannonballSpeed,
		MoleFireRange:         config.MoleFireRange,
		ClearRabbitsOnLevelUp: config.ClearRabbitsOnLevelUp,
	}
}

// Validate проверяет, что значения не ломают инварианты симуляции.
func (t Tuning) Validate() error {
	switch {
	case t.StartingLives < 1:
		return fmt.Errorf("starting_lives must be at least 1, got %d", t.StartingLives)
	case t.MaxAmmo < 0:
		return fmt.Errorf("max_ammo must not be negative, got %d", t.MaxAmmo)
	case t.StartingAmmo < 0 || t.StartingAmmo > t.MaxAmmo:
		return fmt.Errorf("starting_ammo must be within [0, %d], got %d", t.MaxAmmo, t.StartingAmmo)
	case t.PlayerStep <= 0 || t.RotationStep <= 0:
		return fmt.Errorf("player_step and rotation_step must be positive")
	case t.MaxCannonAngle <= 0 || t.MaxCannonAngle >= 180:
		return fmt.Errorf("max_cannon_angle must be within (0, 180), got %v", t.MaxCannonAngle)
	case t.CannonballSpeed <= 0:
		return fmt.Errorf("cannonball_speed must be positive, got %v", t.CannonballSpeed)
	case t.MoleFireRange < 1:
		return fmt.Errorf("mole_fire_range must be at least 1, got %d", t.MoleFireRange)
	}
	return nil
}
