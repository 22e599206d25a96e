package audio

import (
	"testing"

	"github.com/lixenwraith/pigroll/events"
	"github.com/lixenwraith/pigroll/scoring"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		sm.Play(st, 1)
	}
	sm.HandleEvent(events.GameEvent{Type: events.EventMatchEnd})
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never opens the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled Initialize returned %v", err)
	}
	if sm.initialized {
		t.Error("disabled manager initialized the speaker")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI without audio devices; the game runs silent
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(SoundToss, 1)
	sm.Cleanup()
}

func TestSoundFor(t *testing.T) {
	roll := func(o scoring.Outcome) events.GameEvent {
		return events.GameEvent{
			Type:    events.EventRollResolved,
			Payload: &events.RollPayload{Result: scoring.Result{Outcome: o}},
		}
	}
	tests := []struct {
		name      string
		ev        events.GameEvent
		want      SoundType
		intensity float64
		ok        bool
	}{
		{"toss", events.GameEvent{Type: events.EventToss}, SoundToss, 1, true},
		{"impact", events.GameEvent{Type: events.EventImpact, Payload: &events.ImpactPayload{Speed: 4.5}}, SoundImpact, 4.5, true},
		{"impact without payload", events.GameEvent{Type: events.EventImpact}, 0, 0, false},
		{"double", roll(scoring.DoubleJowler), SoundChime, 1, true},
		{"pig out", roll(scoring.PigOut), SoundPigOut, 1, true},
		{"normal", roll(scoring.Normal), 0, 0, false},
		{"cider", roll(scoring.Cider), 0, 0, false},
		{"win", events.GameEvent{Type: events.EventMatchEnd}, SoundFanfare, 1, true},
		{"reset", events.GameEvent{Type: events.EventReset}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, intensity, ok := SoundFor(tt.ev)
			if ok != tt.ok || (ok && (st != tt.want || intensity != tt.intensity)) {
				t.Errorf("SoundFor = %s, %v, %v; want %s, %v, %v", st, intensity, ok, tt.want, tt.intensity, tt.ok)
			}
		})
	}
}

func TestSoundManagerRegistersWithRouter(t *testing.T) {
	q := events.NewEventQueue()
	r := events.NewRouter(q)
	r.Register(NewSoundManager(nil))

	for _, et := range []events.EventType{events.EventToss, events.EventImpact, events.EventRollResolved, events.EventMatchEnd} {
		if !r.HasHandlers(et) {
			t.Errorf("no sound handler for %s", et)
		}
	}
	q.Push(events.GameEvent{Type: events.EventToss})
	r.DispatchAll()
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Fatal("new manager should not be muted")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("first toggle should mute")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("second toggle should unmute")
	}

	// Muted play on an uninitialized manager must not panic
	sm.ToggleMute()
	sm.Play(SoundChime, 1)
}
