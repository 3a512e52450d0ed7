package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gordonklaus/portaudio"
)

// Processor renders the chirp inside a portaudio output callback.
type Processor struct {
	Stream *portaudio.Stream

	voice   Voice
	mu      sync.Mutex
	current beep.Streamer
	buf     [][2]float64
}

func NewProcessor(v Voice) (*Processor, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	p := &Processor{voice: v, buf: make([][2]float64, BufferSize)}

	// output only; duplex streams fail on machines without a capture device
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(SampleRate), BufferSize, p.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	p.Stream = stream
	return p, nil
}

// Play restarts the chirp; a drop during a running chirp cuts it short.
func (p *Processor) Play() {
	p.mu.Lock()
	p.current = NewTone(p.voice, SampleRate)
	p.mu.Unlock()
}

func (p *Processor) ProcessAudio(out [][]float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	if p.current != nil {
		if len(p.buf) < len(out[0]) {
			p.buf = make([][2]float64, len(out[0]))
		}
		var ok bool
		n, ok = p.current.Stream(p.buf[:len(out[0])])
		if !ok || n < len(out[0]) {
			p.current = nil
		}
	}
	for i := range out[0] {
		l, r := 0.0, 0.0
		if i < n {
			l, r = p.buf[i][0], p.buf[i][1]
		}
		out[0][i] = float32(l)
		out[1][i] = float32(r)
	}
}

func (p *Processor) Close() {
	if p.Stream != nil {
		p.Stream.Stop()
		p.Stream.Close()
	}
	portaudio.Terminate()
}
