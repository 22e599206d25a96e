package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/vmath"
)

// waveform maps a phase in [0,1) to a sample in [-1,1]
type waveform func(phase float64) float64

func sineWave(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func sawWave(phase float64) float64 { return 2*phase - 1 }

// synth streams a waveform at a fixed frequency for a fixed number of samples
type synth struct {
	wave   waveform
	step   float64 // phase advance per sample
	phase  float64
	remain int
}

func newSynth(wave waveform, freq float64, d time.Duration, rate beep.SampleRate) *synth {
	return &synth{
		wave:   wave,
		step:   freq / float64(rate),
		remain: rate.N(d),
	}
}

// newNoise is white noise; the generator is seeded from the length so an effect always sounds the same
func newNoise(d time.Duration, rate beep.SampleRate) *synth {
	rng := vmath.NewFastRand(uint64(rate.N(d)))
	return newSynth(func(float64) float64 { return rng.Float64()*2 - 1 }, 0, d, rate)
}

func (s *synth) Stream(samples [][2]float64) (int, bool) {
	if s.remain <= 0 {
		return 0, false
	}
	n := min(len(samples), s.remain)
	for i := range n {
		v := s.wave(s.phase)
		samples[i] = [2]float64{v, v}
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
	}
	s.remain -= n
	return n, true
}

func (s *synth) Err() error { return nil }

// ramp gates a streamer to a fixed length with linear fade-in and fade-out
type ramp struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newRamp(src beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *ramp {
	return &ramp{
		src:     src,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain at the current position; fade-out wins where the two overlap
func (r *ramp) gain() float64 {
	g := 1.0
	if r.attack > 0 && r.pos < r.attack {
		g = float64(r.pos) / float64(r.attack)
	}
	if left := r.total - r.pos; r.release > 0 && left < r.release {
		g = min(g, float64(left)/float64(r.release))
	}
	return g
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	left := r.total - r.pos
	if left <= 0 {
		return 0, false
	}
	n, ok := r.src.Stream(samples[:min(len(samples), left)])
	for i := range n {
		g := r.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.src.Err() }

// newVolume applies a linear gain; zero or less is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a sine note from the beep generator, shaped to duration
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Above Nyquist; the synth aliases instead of failing
		sine = newSynth(sineWave, freq, duration, rate)
	}
	return newRamp(beep.Take(rate.N(duration), sine), duration, attack, release, rate)
}

// CreateTossSound generates a filtered noise whoosh for the throw
func CreateTossSound(cfg *AudioConfig) beep.Streamer {
	noise := newNoise(parameter.WhooshSoundDuration, cfg.SampleRate)
	shaped := newRamp(noise, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, cfg.SampleRate)
	return newVolume(shaped, cfg.effectVolume(SoundToss))
}

// CreateImpactSound generates a low thud whose loudness follows impact speed
func CreateImpactSound(cfg *AudioConfig, speed float64) beep.Streamer {
	rate := cfg.SampleRate
	body := tone(parameter.ImpactSoundFreq, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
	click := newRamp(
		newNoise(parameter.ImpactSoundDuration, rate),
		parameter.ImpactSoundDuration, 0, parameter.ImpactSoundDuration-parameter.ImpactSoundAttack, rate,
	)
	mixed := beep.Mix(newVolume(body, 0.8), newVolume(click, 0.2))

	level := vmath.Clamp(speed/parameter.ImpactFullVolumeSpeed, 0, 1)
	return newVolume(mixed, cfg.effectVolume(SoundImpact)*level)
}

// CreateChimeSound generates a bell for doubles
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.SampleRate

	// Fundamental (A5) with octave overtone
	fund := tone(880.0, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundFundamentalRelease, rate)
	over := tone(1760.0, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.effectVolume(SoundChime))
}

// CreatePigOutSound generates two falling saw notes
func CreatePigOutSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.SampleRate
	note := func(freq float64) beep.Streamer {
		saw := newSynth(sawWave, freq, parameter.PigOutNoteDuration, rate)
		return newRamp(saw, parameter.PigOutNoteDuration, parameter.PigOutSoundAttack, parameter.PigOutSoundRelease, rate)
	}
	return newVolume(beep.Seq(note(220), note(147)), cfg.effectVolume(SoundPigOut))
}

// CreateFanfareSound generates an ascending C major arpeggio
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := cfg.SampleRate
	notes := []float64{523.25, 659.25, 783.99}

	var seq []beep.Streamer
	for _, f := range notes {
		seq = append(seq,
			tone(f, parameter.FanfareNoteDuration, 5*time.Millisecond, 60*time.Millisecond, rate),
			beep.Silence(rate.N(parameter.FanfareNoteGap)),
		)
	}
	seq = append(seq, tone(1046.50, parameter.FanfareLastDuration, 5*time.Millisecond, 400*time.Millisecond, rate))

	return newVolume(beep.Seq(seq...), cfg.effectVolume(SoundFanfare))
}

// GetSoundEffect returns the streamer for a sound type; intensity only affects impacts
func GetSoundEffect(soundType SoundType, intensity float64, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundToss:
		return CreateTossSound(cfg)
	case SoundImpact:
		return CreateImpactSound(cfg, intensity)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundPigOut:
		return CreatePigOutSound(cfg)
	case SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}
