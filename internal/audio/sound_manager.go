// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/event"
	"go-robot-survivor/pkg/logger"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays a short cue for every simulation event it receives.
// Sounds are mixed into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
	log         *logrus.Entry
}

// NewSoundManager creates a manager. Nothing is audible until Initialize.
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
		log:   logger.For("audio"),
	}
}

// Initialize opens the audio device. A failure leaves the game silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("audio initialized")
	return nil
}

// Cleanup silences every playing sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted turns sound effects off or back on.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Played returns how many cues have been started.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// OnEvent plays the cue bound to the event type, if any.
func (sm *SoundManager) OnEvent(e event.Event) {
	cue, ok := CueFor(e.Type)
	if !ok {
		return
	}
	sm.Play(cue)
}

// Play mixes cue into the output.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s, err := cue.Streamer(sampleRate)
	if err != nil {
		sm.log.WithError(err).Warn("cue skipped")
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
