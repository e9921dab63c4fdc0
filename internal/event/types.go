// internal/event/types.go
package event

const (
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerDiscarded   EventType = "TowerDiscarded"   // Data: types.EntityID
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Data: types.EntityID
	EnemyEscaped     EventType = "EnemyEscaped"     // Data: types.EntityID
	WaveEnded        EventType = "WaveEnded"        // Data: wave number
	UpgradePurchased EventType = "UpgradePurchased" // Data: economy.Purchase
	SceneChanged     EventType = "SceneChanged"     // Data: scene name
)
