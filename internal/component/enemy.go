// internal/component/enemy.go
package component

// EnemyTag is the tag hostile entities are registered under.
const EnemyTag = "Enemy"

// Enemy marks a hostile entity. Targeting reads its position only.
type Enemy struct {
	Tag string
}
