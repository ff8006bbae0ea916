package game

import "github.com/spacehole-rogue/spacegame/internal/engine"

// Sprite kinds, one group per scene.
const (
	KindStar engine.Kind = iota + 1
	KindCursor

	KindShip
	KindEnemy
	KindLoot
	KindProjectile

	KindExplorer
	KindResource
	KindHostile

	KindStationText
)

// EnemyState is attached to every combat enemy.
type EnemyState struct {
	HP int
}

// ProjectileState is attached to every laser shot.
type ProjectileState struct {
	Damage int
}

// ShipState mirrors the player's defenses on the combat ship sprite.
type ShipState struct {
	Shield int
	Hull   int
}
