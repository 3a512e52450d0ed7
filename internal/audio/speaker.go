package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerErr  error

	// device hooks, swapped in tests
	clearSpeaker = speaker.Clear
	closeSpeaker = speaker.Close
)

// Speaker plays through the gopxl/beep speaker.
type Speaker struct {
	voice Voice
}

func NewSpeaker(v Voice) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return &Speaker{voice: v}, nil
}

func (s *Speaker) Play() {
	speaker.Play(NewTone(s.voice, SampleRate))
}

// Close stops playback and releases the output device.
func (s *Speaker) Close() {
	clearSpeaker()
	closeSpeaker()
}
