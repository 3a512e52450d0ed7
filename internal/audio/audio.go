package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"

	"github.com/san-kum/seesaw/internal/config"
)

const (
	SampleRate = beep.SampleRate(44100)
	BufferSize = 1024

	// floor of the exponential decay; a true zero is unreachable on a log ramp
	silenceFloor = 0.0001
)

// Player plays the drop cue. Play must not block.
type Player interface {
	Play()
	Close()
}

// Silent is used when audio is disabled or could not be initialised.
type Silent struct{}

func (Silent) Play()  {}
func (Silent) Close() {}

// New opens the configured backend. Failures are logged and yield a
// Silent player so the toy keeps working without sound.
func New(cfg config.AudioConfig) Player {
	if !cfg.Enabled || cfg.Backend == "none" {
		return Silent{}
	}
	voice := Voice{
		Frequency: cfg.Frequency,
		Duration:  time.Duration(cfg.DurationMS) * time.Millisecond,
		Gain:      cfg.Gain,
	}

	var (
		p   Player
		err error
	)
	switch cfg.Backend {
	case "portaudio":
		p, err = NewProcessor(voice)
	default:
		p, err = NewSpeaker(voice)
	}
	if err != nil {
		log.Printf("audio initialization failed (%s): %v", cfg.Backend, err)
		return Silent{}
	}
	return p
}
