// internal/component/ammo.go
package component

import (
	"mole-cannon/internal/interfaces"
	"mole-cannon/internal/types"
)

// AmmoPickup лежит на земле, пока пушка не наедет на него.
type AmmoPickup struct {
	ID     types.EntityID
	Visual interfaces.Visual
}
