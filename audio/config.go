package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/pigroll/parameter"
)

// AudioConfig holds output rate and per-effect volumes, all 0..1
type AudioConfig struct {
	Enabled       bool
	SampleRate    beep.SampleRate
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   beep.SampleRate(parameter.AudioSampleRate),
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundToss:    0.4,
			SoundImpact:  0.8,
			SoundChime:   0.6,
			SoundPigOut:  0.5,
			SoundFanfare: 0.6,
		},
	}
}

// effectVolume is the final gain for a sound type
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
