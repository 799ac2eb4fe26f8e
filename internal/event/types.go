// internal/event/types.go
package event

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyKilled        EventType = "EnemyKilled"
	PlayerSwing        EventType = "PlayerSwing"
	CompanionShot      EventType = "CompanionShot"
	PlayerHit          EventType = "PlayerHit"
	CompanionHit       EventType = "CompanionHit"
	CompanionDied      EventType = "CompanionDied"
	CompanionRespawned EventType = "CompanionRespawned"
	TileMined          EventType = "TileMined"
	ToolBroken         EventType = "ToolBroken"
	DropCollected      EventType = "DropCollected"
	ItemCrafted        EventType = "ItemCrafted"
	BlockPlaced        EventType = "BlockPlaced"
	LevelAdvanced      EventType = "LevelAdvanced"
	GameWon            EventType = "GameWon"
	GameLost           EventType = "GameLost"
)

// EnemyData accompanies EnemySpawned and EnemyKilled.
type EnemyData struct {
	ID   uint64
	Kind string
	X, Y float64
}

// DamageData accompanies PlayerHit and CompanionHit.
type DamageData struct {
	Amount    float64
	Remaining float64
}

// ResourceData accompanies TileMined, DropCollected and BlockPlaced.
type ResourceData struct {
	Resource string
	Amount   int
}

// LevelData accompanies LevelAdvanced, GameWon and GameLost.
type LevelData struct {
	Level int
	Score int
}
