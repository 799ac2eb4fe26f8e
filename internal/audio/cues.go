// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-robot-survivor/internal/event"
)

// Note is one sine tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cue is a short sequence of notes played for an event.
type Cue struct {
	Notes  []Note
	Volume float64 // linear, 1 is unchanged
}

// Length is the total playing time of the cue.
func (c Cue) Length() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Duration
	}
	return d
}

var cues = map[event.EventType]Cue{
	event.PlayerSwing:        {Notes: []Note{{330, 40 * time.Millisecond}}, Volume: 0.25},
	event.CompanionShot:      {Notes: []Note{{1320, 30 * time.Millisecond}, {990, 30 * time.Millisecond}}, Volume: 0.2},
	event.PlayerHit:          {Notes: []Note{{140, 90 * time.Millisecond}}, Volume: 0.5},
	event.CompanionHit:       {Notes: []Note{{180, 60 * time.Millisecond}}, Volume: 0.3},
	event.CompanionDied:      {Notes: []Note{{392, 120 * time.Millisecond}, {262, 200 * time.Millisecond}}, Volume: 0.4},
	event.CompanionRespawned: {Notes: []Note{{523, 80 * time.Millisecond}, {784, 120 * time.Millisecond}}, Volume: 0.35},
	event.EnemyKilled:        {Notes: []Note{{660, 50 * time.Millisecond}, {880, 70 * time.Millisecond}}, Volume: 0.35},
	event.TileMined:          {Notes: []Note{{220, 60 * time.Millisecond}}, Volume: 0.3},
	event.ToolBroken:         {Notes: []Note{{300, 80 * time.Millisecond}, {150, 160 * time.Millisecond}}, Volume: 0.45},
	event.DropCollected:      {Notes: []Note{{988, 50 * time.Millisecond}}, Volume: 0.25},
	event.ItemCrafted:        {Notes: []Note{{523, 60 * time.Millisecond}, {659, 60 * time.Millisecond}, {784, 90 * time.Millisecond}}, Volume: 0.35},
	event.BlockPlaced:        {Notes: []Note{{180, 40 * time.Millisecond}}, Volume: 0.3},
	event.LevelAdvanced:      {Notes: []Note{{523, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 180 * time.Millisecond}}, Volume: 0.4},
	event.GameWon:            {Notes: []Note{{523, 150 * time.Millisecond}, {659, 150 * time.Millisecond}, {784, 150 * time.Millisecond}, {1047, 400 * time.Millisecond}}, Volume: 0.45},
	event.GameLost:           {Notes: []Note{{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {262, 500 * time.Millisecond}}, Volume: 0.45},
}

// CueFor returns the cue played for an event type.
func CueFor(t event.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// Streamer renders the cue at rate. Every note fades out over its last
// quarter to avoid clicks.
func (c Cue) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, n := range c.Notes {
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, newFade(beep.Take(rate.N(n.Duration), tone), rate.N(n.Duration)))
	}
	return newVolume(beep.Seq(parts...), c.Volume), nil
}

// fade scales the last quarter of a stream of known length down to silence.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

func newFade(s beep.Streamer, total int) beep.Streamer {
	return &fade{streamer: s, total: total}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	start := f.total - f.total/4
	for i := 0; i < n; i++ {
		if f.position >= start && f.total > start {
			vol := float64(f.total-f.position) / float64(f.total-start)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume wraps s in a volume effect. Zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
