package seesaw

import (
	"log"
	"math/rand"
	"time"
)

// Store persists snapshots. Load returns nil with no error when nothing
// has been saved yet.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// Sounder plays the drop cue.
type Sounder interface {
	Play()
}

type Option func(*Simulation)

func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

func WithSounder(snd Sounder) Option {
	return func(s *Simulation) { s.sound = snd }
}

func WithJournalCapacity(n int) Option {
	return func(s *Simulation) { s.journal = NewJournal(n) }
}

// Simulation owns the objects on the plank and the displayed angle.
type Simulation struct {
	params     Params
	animator   Animator
	objects    []Object
	current    float64
	balance    Balance
	nextWeight int
	nextColor  string
	rng        *rand.Rand
	journal    *Journal
	store      Store
	sound      Sounder
}

func New(p Params, opts ...Option) *Simulation {
	s := &Simulation{
		params:   p,
		animator: NewAnimator(p),
		objects:  make([]Object, 0),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		journal:  NewJournal(DefaultJournalCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.drawNext()
	return s
}

// Attach binds a store, restores whatever it holds and records the load in
// the journal. Storage failures are logged and otherwise ignored.
func (s *Simulation) Attach(st Store) {
	s.store = st
	snap, err := st.Load()
	if err != nil {
		log.Printf("could not load state: %v", err)
	}
	if snap != nil {
		s.Restore(snap)
	}
	s.journal.Add("Loaded %d object(s) from storage", len(s.objects))
}

// Restore replaces the arrangement with a snapshot, clamping anything out of range.
func (s *Simulation) Restore(snap *Snapshot) {
	half := s.params.HalfLength()
	s.objects = make([]Object, 0, len(snap.Objects))
	for _, o := range snap.Objects {
		s.objects = append(s.objects, Object{
			Position: Clamp(o.Position, -half, half),
			Weight:   ClampWeight(o.Weight),
			Color:    o.Color,
		})
	}
	if snap.NextWeight >= MinWeight && snap.NextWeight <= MaxWeight {
		s.nextWeight = snap.NextWeight
	}
	if snap.NextColor != "" {
		s.nextColor = snap.NextColor
	}
	s.recalc()
}

// Place drops the pending object at position and returns what was placed.
func (s *Simulation) Place(position float64) Object {
	half := s.params.HalfLength()
	obj := Object{
		Position: Clamp(position, -half, half),
		Weight:   s.nextWeight,
		Color:    s.nextColor,
	}
	s.objects = append(s.objects, obj)
	s.drawNext()
	s.recalc()
	s.persist()
	if s.sound != nil {
		s.sound.Play()
	}
	s.journal.Add("Drop w=%dkg @ %.0fpx (%s) | τL=%.0f, τR=%.0f, θ=%.1f°",
		obj.Weight, obj.Position, obj.Side(), s.balance.LeftTorque, s.balance.RightTorque, s.balance.Target)
	return obj
}

// SetNext overrides the pending object. An empty colour keeps the current one.
func (s *Simulation) SetNext(weight int, color string) {
	s.nextWeight = ClampWeight(weight)
	if color != "" {
		s.nextColor = color
	}
}

// Reset removes every object. The displayed angle eases back to level.
func (s *Simulation) Reset() {
	s.objects = s.objects[:0]
	s.recalc()
	s.drawNext()
	s.persist()
	s.journal.Add("Reset simulation")
}

// Frame advances the displayed angle by one animation frame.
func (s *Simulation) Frame() float64 {
	s.current = s.animator.Step(s.current, s.balance.Target)
	return s.current
}

func (s *Simulation) Settled() bool { return s.current == s.balance.Target }

// SettleNow jumps the displayed angle to the target.
func (s *Simulation) SettleNow() { s.current = s.balance.Target }

func (s *Simulation) Params() Params    { return s.params }
func (s *Simulation) Angle() float64    { return s.current }
func (s *Simulation) Target() float64   { return s.balance.Target }
func (s *Simulation) Balance() Balance  { return s.balance }
func (s *Simulation) NextWeight() int   { return s.nextWeight }
func (s *Simulation) NextColor() string { return s.nextColor }
func (s *Simulation) Journal() *Journal { return s.journal }
func (s *Simulation) Animator() Animator {
	return s.animator
}

// Objects returns a copy of the placed objects in drop order.
func (s *Simulation) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		Objects:    s.Objects(),
		NextWeight: s.nextWeight,
		NextColor:  s.nextColor,
	}
}

func (s *Simulation) recalc() {
	s.balance = Calculate(s.objects, s.params)
}

func (s *Simulation) drawNext() {
	s.nextWeight = RandomWeight(s.rng)
	s.nextColor = RandomColor(s.rng)
}

func (s *Simulation) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.Snapshot()); err != nil {
		log.Printf("could not save state: %v", err)
	}
}
