package system

import (
	"github.com/younwookim/robobrawl/internal/domain/ai"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
)

// Sound names a sound the presentation layer may play
type Sound int

const (
	SoundHit Sound = iota
	SoundDefend
	SoundDeath
)

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundDefend:
		return "defend"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Spark is a hit effect at a world position
type Spark struct {
	X, Y  float64
	Heavy bool
}

// EffectsSink receives presentation feedback from the resolver.
// It never influences the simulation.
type EffectsSink interface {
	Hitstop(frames int)
	ScreenShake(intensity float64)
	Cue(c ai.Cue)
	HitEffect(x, y float64, heavy bool)
	Sound(s Sound)
}

// NopEffects discards every effect
type NopEffects struct{}

func (NopEffects) Hitstop(int)                      {}
func (NopEffects) ScreenShake(float64)              {}
func (NopEffects) Cue(ai.Cue)                       {}
func (NopEffects) HitEffect(float64, float64, bool) {}
func (NopEffects) Sound(Sound)                      {}

// Feedback accumulates effects between frames for the renderer
type Feedback struct {
	cfg config.FeedbackConfig

	HitstopFrames int
	Shake         float64
	Cues          []ai.Cue
	Sparks        []Spark
	Sounds        []Sound
}

// NewFeedback creates a feedback sink honoring the enabled flags in cfg
func NewFeedback(cfg config.FeedbackConfig) *Feedback {
	return &Feedback{cfg: cfg}
}

// Hitstop freezes the next frames. Overlapping requests keep the longest.
func (f *Feedback) Hitstop(frames int) {
	if !f.cfg.Hitstop.Enabled {
		return
	}
	f.HitstopFrames = max(f.HitstopFrames, frames)
}

// ScreenShake starts a shake. Overlapping requests keep the strongest.
func (f *Feedback) ScreenShake(intensity float64) {
	if !f.cfg.ScreenShake.Enabled {
		return
	}
	f.Shake = max(f.Shake, intensity)
}

// Cue queues a cue for the next draw
func (f *Feedback) Cue(c ai.Cue) {
	f.Cues = append(f.Cues, c)
}

// HitEffect queues a spark for the next draw
func (f *Feedback) HitEffect(x, y float64, heavy bool) {
	f.Sparks = append(f.Sparks, Spark{X: x, Y: y, Heavy: heavy})
}

// Sound queues a sound for the next frame
func (f *Feedback) Sound(s Sound) {
	f.Sounds = append(f.Sounds, s)
}

// Frozen consumes one hitstop frame. Returns true while the simulation should pause.
func (f *Feedback) Frozen() bool {
	if f.HitstopFrames <= 0 {
		return false
	}
	f.HitstopFrames--
	return true
}

// Decay reduces the shake once per frame
func (f *Feedback) Decay() {
	f.Shake *= f.cfg.ScreenShake.Decay
	if f.Shake < 1 {
		f.Shake = 0
	}
}

// DrainCues returns and clears the queued cues
func (f *Feedback) DrainCues() []ai.Cue {
	cues := f.Cues
	f.Cues = nil
	return cues
}

// DrainSparks returns and clears the queued sparks
func (f *Feedback) DrainSparks() []Spark {
	sparks := f.Sparks
	f.Sparks = nil
	return sparks
}

// DrainSounds returns and clears the queued sounds
func (f *Feedback) DrainSounds() []Sound {
	sounds := f.Sounds
	f.Sounds = nil
	return sounds
}
