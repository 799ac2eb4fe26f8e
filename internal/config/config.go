// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TileSize     = 32.0

	TickMs         = 16 // logical milliseconds per simulation tick
	TicksPerSecond = 60

	PlayerSize     = 32.0
	PlayerSpeed    = 2.5
	PlayerStartX   = 100.0
	PlayerStartY   = 300.0
	PlayerMaxHP    = 100.0
	MaxHunger      = 100.0
	HungerDecay    = 0.01 // per tick
	StarvationRate = 0.05 // health per tick while hunger is 0

	RobotSize         = 24.0
	RobotSpeed        = 2.0
	RobotStartX       = 130.0
	RobotStartY       = 320.0
	RobotMaxHP        = 75.0
	RobotUpgradedHP   = 150.0
	RobotMaxEnergy    = 100.0
	RobotEnergyDecay  = 0.005 // per tick
	RobotFollowRadius = 70.0
	RobotSlowEnergy   = 20.0 // below this the robot moves at half speed
	RobotAttackEnergy = 10.0 // attacks need strictly more than this
	RobotAttackCost   = 5.0
	RobotUpgradedDmg  = 50.0
	RobotRespawnMs    = 10000
	RobotRespawnDX    = 40.0
	RobotRespawnDY    = 20.0

	AttackRange      = 45.0
	RobotAttackRange = 80.0
	MiningRange      = 40.0

	PlayerCooldownMs   = 800
	PlayerAttackAnimMs = 600 // attacking flag stays on while cooldown exceeds this
	RobotCooldownMs    = 1000
	RobotAttackAnimMs  = 800

	EnemyAttackRange      = 45.0
	EnemyAttackIntervalMs = 1200
	EnemyChaseStop        = 30.0
	NightSpeedBonus       = 1.1
	NightSpawnMultiplier  = 1.5
	NightThreshold        = 50.0
	DayNightStep          = 0.05
	DayNightCycle         = 100.0

	BaseSpawnIntervalMs = 5000
	SpawnIntervalStep   = 400
	MinSpawnIntervalMs  = 1500
	SpawnOffscreen      = 40.0
	SpawnBandTop        = 50.0
	SpawnBandHeight     = ScreenHeight - 150

	MiningProgressMax = 100.0
	MiningSpeedFactor = 2.0

	DropPickupRadius = 25.0
	DropLifetimeMs   = 30000
	DropJitter       = 40.0
	DropMargin       = 10.0
	DropFarMargin    = 20.0
	DropSize         = 12.0

	ScorePerKill = 15
	MaxLevel     = 10
)

var (
	SkyDayTop      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	SkyDayBottom   = color.RGBA{0x98, 0xfb, 0x98, 0xff}
	SkyNightBottom = color.RGBA{10, 10, 30, 0xff}

	TileStrokeColor  = color.RGBA{0, 0, 0, 0xff}
	MiningHighlight  = color.RGBA{255, 255, 0, 0xff}
	PlayerColor      = color.RGBA{0x4d, 0xab, 0xf7, 0xff}
	PlayerHitColor   = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	PlayerHatColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	SwordColor       = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	RobotColor       = color.RGBA{0x9c, 0x27, 0xb0, 0xff}
	RobotUpgradedCol = color.RGBA{0xff, 0x6b, 0x9d, 0xff}
	RobotHitColor    = color.RGBA{0xff, 0x98, 0x00, 0xff}
	RobotEyeColor    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	RobotTiredEye    = color.RGBA{0xff, 0x66, 0x00, 0xff}
	RobotAngryEye    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	LaserColor       = color.RGBA{0x00, 0xff, 0xff, 0xff}
	HealthBackColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	HealthFillColor  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	HungerBackColor  = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	HungerFillColor  = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	EnergyBackColor  = color.RGBA{0x66, 0x66, 0x66, 0xff}
	EnergyFillColor  = color.RGBA{0x00, 0xbf, 0xff, 0xff}
	RespawnFillColor = color.RGBA{0xff, 0xff, 0x00, 0xff}
	PanelColor       = color.RGBA{0, 0, 0, 178}
	TextLightColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	TextDarkColor    = color.RGBA{0, 0, 0, 0xff}
	TextMutedColor   = color.RGBA{0x88, 0x88, 0x88, 0xff}
	TextGoodColor    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	TextBadColor     = color.RGBA{0xff, 0x55, 0x55, 0xff}
	VictoryColor     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	DropStrokeColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	MenuBackColor    = color.RGBA{20, 20, 30, 230}
	MenuBorderColor  = color.RGBA{70, 100, 120, 255}
	MenuSelectColor  = color.RGBA{70, 130, 180, 220}
)

// SpawnIntervalMs is the base enemy spawn interval for a level, before the
// night multiplier is applied.
func SpawnIntervalMs(level int) float64 {
	return float64(max(BaseSpawnIntervalMs-(level-1)*SpawnIntervalStep, MinSpawnIntervalMs))
}

// MaxEnemies is the base enemy cap for a level, before the night multiplier.
func MaxEnemies(level int) float64 {
	return float64(max(2, min(3+level/2, 8)))
}
