package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pigroll/events"
	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/scoring"
)

// SoundManager plays game sound effects through the beep speaker
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	now      func() time.Time
	lastPlay [soundTypeCount]time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.cfg.SampleRate, sm.cfg.SampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker close; clearing the mixer leaves it silent
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

// Play starts a sound; repeats of the same type within MinSoundGap are dropped
func (sm *SoundManager) Play(soundType SoundType, intensity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastPlay[soundType]) < parameter.MinSoundGap {
		return
	}
	streamer := GetSoundEffect(soundType, intensity, sm.cfg)
	if streamer == nil {
		return
	}
	sm.lastPlay[soundType] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports whether playback is muted
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventToss,
		events.EventImpact,
		events.EventRollResolved,
		events.EventMatchEnd,
	}
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if st, intensity, ok := SoundFor(ev); ok {
		sm.Play(st, intensity)
	}
}

// SoundFor maps a game event to its sound effect
// Normal and cider rolls are silent
func SoundFor(ev events.GameEvent) (SoundType, float64, bool) {
	switch ev.Type {
	case events.EventToss:
		return SoundToss, 1, true
	case events.EventImpact:
		if p, ok := ev.Payload.(*events.ImpactPayload); ok {
			return SoundImpact, p.Speed, true
		}
	case events.EventRollResolved:
		p, ok := ev.Payload.(*events.RollPayload)
		if !ok {
			return 0, 0, false
		}
		switch {
		case p.Result.Outcome == scoring.PigOut:
			return SoundPigOut, 1, true
		case p.Result.Outcome.IsDouble():
			return SoundChime, 1, true
		}
	case events.EventMatchEnd:
		return SoundFanfare, 1, true
	}
	return 0, 0, false
}
