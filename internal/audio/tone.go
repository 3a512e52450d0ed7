package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Voice describes the drop chirp.
type Voice struct {
	Frequency float64
	Duration  time.Duration
	Gain      float64
}

// tone is a sine whose gain decays exponentially to silenceFloor.
type tone struct {
	freq     float64
	gain     float64
	ratio    float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone returns a finite streamer for v at the given sample rate.
func NewTone(v Voice, rate beep.SampleRate) beep.Streamer {
	gain := v.Gain
	if gain <= silenceFloor {
		gain = silenceFloor
	}
	return &tone{
		freq:  v.Frequency,
		gain:  gain,
		ratio: silenceFloor / gain,
		total: rate.N(v.Duration),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * t.gain * math.Pow(t.ratio, progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
