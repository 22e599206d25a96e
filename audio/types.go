package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundToss    SoundType = iota // Pigs leave the hand
	SoundImpact                   // Pig hits the ring
	SoundChime                    // Double scored
	SoundPigOut                   // Turn forfeited
	SoundFanfare                  // Match won
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundToss:    "toss",
	SoundImpact:  "impact",
	SoundChime:   "chime",
	SoundPigOut:  "pig_out",
	SoundFanfare: "fanfare",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
