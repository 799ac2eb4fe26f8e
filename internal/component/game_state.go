// internal/component/game_state.go
package component

import "go-robot-survivor/internal/config"

// Progress is the level and scoring state of a run.
type Progress struct {
	Level          int
	KillsThisLevel int
	Score          int
	DayNight       float64 // 0..100, above NightThreshold is night
	GameOver       bool
	Won            bool
}

// Night reports whether the day/night phase is in its night half.
func (p *Progress) Night() bool {
	return p.DayNight > config.NightThreshold
}

// Mining tracks progress towards breaking one tile.
type Mining struct {
	Target   int // index into the grid tiles, -1 when idle
	Progress float64
}

// Reset clears the mining target.
func (m *Mining) Reset() {
	m.Target = -1
	m.Progress = 0
}

// Active reports whether a tile is being mined.
func (m *Mining) Active() bool {
	return m.Target >= 0
}
