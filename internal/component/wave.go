// internal/component/wave.go
package component

// Wave tracks the hostile spawner of the current wave.
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
}
