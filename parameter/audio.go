package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 0..1
	AudioMasterVolume = 0.6

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Toss whoosh
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Impact thud, volume follows impact speed up to ImpactFullVolumeSpeed
const (
	ImpactSoundDuration   = 90 * time.Millisecond
	ImpactSoundAttack     = 2 * time.Millisecond
	ImpactSoundRelease    = 70 * time.Millisecond
	ImpactSoundFreq       = 90.0 // Hz
	ImpactFullVolumeSpeed = 8.0
)

// Score chime, a bell for doubles
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
)

// Pig out, two falling saw notes
const (
	PigOutNoteDuration = 180 * time.Millisecond
	PigOutSoundAttack  = 5 * time.Millisecond
	PigOutSoundRelease = 60 * time.Millisecond
)

// Win fanfare, ascending sine arpeggio
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareNoteGap      = 30 * time.Millisecond
	FanfareLastDuration = 500 * time.Millisecond
)
