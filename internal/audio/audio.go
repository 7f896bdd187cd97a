package audio

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pongduel/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Effect returns a fresh streamer for a simulation sound, or nil if the sound is unknown
func Effect(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundBounce:
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case game.SoundHit:
		return squareWave(440, 30*time.Millisecond)
	case game.SoundWin:
		// Descending jingle
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			tone(330, 150*time.Millisecond),
		)
	}
	return nil
}

// Speaker plays simulation sounds through the system speaker.
// Before Init, or after Close, sounds are dropped.
type Speaker struct {
	log *slog.Logger
}

func NewSpeaker(logger *slog.Logger) *Speaker {
	return &Speaker{log: logger}
}

// PlaySound queues the effect and returns immediately
func (s *Speaker) PlaySound(snd game.Sound) {
	if !initialized {
		return
	}
	st := Effect(snd)
	if st == nil {
		s.log.Warn("unknown sound", "sound", snd)
		return
	}
	speaker.Play(st)
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
