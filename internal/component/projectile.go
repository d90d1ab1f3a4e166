// internal/component/projectile.go
package component

import (
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/types"
)

// Projectile is a thrown object in flight. Hit and TargetID are fixed at throw
// time; the flight itself is driven by the entity's Tween.
type Projectile struct {
	Mode     defs.AttackMode
	FromX    float64
	FromY    float64
	ToX      float64
	ToY      float64
	TargetID types.EntityID // 0 on a miss
	Hit      bool
	Spin     float64 // degrees, advanced while flying
}
