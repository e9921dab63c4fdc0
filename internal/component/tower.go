// component/tower.go
package component

import "radius-defense/internal/defs"

type Tower struct {
	Category defs.TowerCategory
	Enabled  bool // Fire loop runs only while enabled
	Preview  bool // Being dragged, not yet placed
}
