package defs

// LevelRequirements holds the kill quota of each level. Index 0 is unused.
var LevelRequirements = [...]int{0, 5, 8, 12, 15, 20, 25, 30, 35, 40, 50}

// FinalLevel is the last playable level.
const FinalLevel = len(LevelRequirements) - 1

// RequiredKills returns the kill quota for level, clamped to the known range.
func RequiredKills(level int) int {
	if level < 1 {
		level = 1
	}
	if level > FinalLevel {
		level = FinalLevel
	}
	return LevelRequirements[level]
}
