package seesaw

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type memStore struct {
	snap    *Snapshot
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load() (*Snapshot, error) { return m.snap, m.loadErr }
func (m *memStore) Save(s *Snapshot) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snap = s
	return nil
}

type countSounder struct{ n int }

func (c *countSounder) Play() { c.n++ }

func TestSimulation_PlaceClamps(t *testing.T) {
	sim := New(DefaultParams(), WithSeed(1))

	sim.SetNext(42, "#ff0000")
	obj := sim.Place(350)
	if obj.Position != 200 {
		t.Errorf("position = %v, want 200", obj.Position)
	}
	if obj.Weight != MaxWeight {
		t.Errorf("weight = %d, want %d", obj.Weight, MaxWeight)
	}
	if obj.Color != "#ff0000" {
		t.Errorf("color = %q", obj.Color)
	}

	sim.SetNext(-3, "")
	obj = sim.Place(-1000)
	if obj.Position != -200 || obj.Weight != MinWeight {
		t.Errorf("got %+v, want position -200 weight %d", obj, MinWeight)
	}

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), 0},
		{"+inf", math.Inf(1), 200},
		{"-inf", math.Inf(-1), -200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := sim.Place(tt.in)
			if obj.Position != tt.want {
				t.Errorf("position = %v, want %v", obj.Position, tt.want)
			}
			if strings.Contains(sim.Journal().Entries()[0].Text, "NaN") {
				t.Errorf("journal line %q", sim.Journal().Entries()[0].Text)
			}
		})
	}
}

func TestSimulation_RestoreNonFinite(t *testing.T) {
	sim := New(DefaultParams(), WithSeed(1))
	sim.Restore(&Snapshot{Objects: []Object{
		{Position: math.NaN(), Weight: 3},
		{Position: math.Inf(1), Weight: 2},
	}})

	objs := sim.Objects()
	if objs[0].Position != 0 || objs[1].Position != 200 {
		t.Errorf("positions = %v, %v; want 0, 200", objs[0].Position, objs[1].Position)
	}
	if math.IsNaN(sim.Target()) {
		t.Error("target is NaN")
	}
}

func TestSimulation_PlaceUpdatesBalance(t *testing.T) {
	snd := &countSounder{}
	sim := New(DefaultParams(), WithSeed(3), WithSounder(snd))

	sim.SetNext(4, "")
	sim.Place(50)

	b := sim.Balance()
	if b.RightTorque != 200 || b.RightWeight != 4 {
		t.Errorf("balance = %+v", b)
	}
	if sim.Target() != 20 {
		t.Errorf("target = %v, want 20", sim.Target())
	}
	if sim.Angle() != 0 {
		t.Errorf("angle should not jump before a frame, got %v", sim.Angle())
	}
	if snd.n != 1 {
		t.Errorf("expected one drop sound, got %d", snd.n)
	}
	if len(sim.Objects()) != 1 {
		t.Errorf("expected 1 object, got %d", len(sim.Objects()))
	}
}

func TestSimulation_PlaceDrawsNewPending(t *testing.T) {
	sim := New(DefaultParams(), WithSeed(5))
	for i := 0; i < 50; i++ {
		sim.Place(float64(i))
		if w := sim.NextWeight(); w < MinWeight || w > MaxWeight {
			t.Fatalf("pending weight %d out of range", w)
		}
		if !strings.HasPrefix(sim.NextColor(), "hsl(") {
			t.Fatalf("pending colour %q", sim.NextColor())
		}
	}
}

func TestSimulation_Reset(t *testing.T) {
	st := &memStore{}
	sim := New(DefaultParams(), WithSeed(9))
	sim.Attach(st)

	sim.Place(-120)
	sim.Place(80)
	for i := 0; i < 20; i++ {
		sim.Frame()
	}
	sim.Reset()

	if len(sim.Objects()) != 0 {
		t.Errorf("expected no objects, got %d", len(sim.Objects()))
	}
	b := sim.Balance()
	if b.LeftTorque != 0 || b.RightTorque != 0 || b.Target != 0 {
		t.Errorf("balance not zeroed: %+v", b)
	}
	if st.snap == nil || len(st.snap.Objects) != 0 {
		t.Error("reset was not persisted")
	}
	for i := 0; i < 1000 && !sim.Settled(); i++ {
		sim.Frame()
	}
	if sim.Angle() != 0 {
		t.Errorf("angle = %v after settling, want 0", sim.Angle())
	}
	if got := sim.Journal().Entries()[0].Text; got != "Reset simulation" {
		t.Errorf("last journal entry = %q", got)
	}
}

func TestSimulation_AttachRestores(t *testing.T) {
	st := &memStore{snap: &Snapshot{
		Objects: []Object{
			{Position: -100, Weight: 3, Color: "#00ff00"},
			{Position: 900, Weight: 20, Color: "#0000ff"},
		},
		NextWeight: 7,
		NextColor:  "#123456",
	}}
	sim := New(DefaultParams(), WithSeed(11))
	sim.Attach(st)

	objs := sim.Objects()
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	if objs[1].Position != 200 || objs[1].Weight != 10 {
		t.Errorf("restored object not clamped: %+v", objs[1])
	}
	if sim.NextWeight() != 7 || sim.NextColor() != "#123456" {
		t.Errorf("pending = (%d, %q)", sim.NextWeight(), sim.NextColor())
	}
	if sim.Balance().LeftTorque != 300 {
		t.Errorf("left torque = %v, want 300", sim.Balance().LeftTorque)
	}
	if got := sim.Journal().Entries()[0].Text; got != "Loaded 2 object(s) from storage" {
		t.Errorf("journal = %q", got)
	}
}

func TestSimulation_StorageFailuresIgnored(t *testing.T) {
	st := &memStore{loadErr: errors.New("disk on fire"), saveErr: errors.New("read-only")}
	sim := New(DefaultParams(), WithSeed(13))
	sim.Attach(st)

	sim.Place(10)
	sim.Reset()

	if st.saves != 2 {
		t.Errorf("expected 2 save attempts, got %d", st.saves)
	}
	if got := sim.Journal().Entries()[2].Text; got != "Loaded 0 object(s) from storage" {
		t.Errorf("journal = %q", got)
	}
}

func TestSimulation_DropLogLine(t *testing.T) {
	sim := New(DefaultParams(), WithSeed(17))
	sim.SetNext(5, "")
	sim.Place(-40)

	want := "Drop w=5kg @ -40px (L) | τL=200, τR=0, θ=-20.0°"
	if got := sim.Journal().Entries()[0].Text; got != want {
		t.Errorf("journal = %q, want %q", got, want)
	}
}

func TestSimulation_SnapshotRoundTrip(t *testing.T) {
	a := New(DefaultParams(), WithSeed(19))
	a.Place(-150)
	a.Place(30.5)
	a.Place(0)

	b := New(DefaultParams(), WithSeed(23))
	b.Restore(a.Snapshot())

	ao, bo := a.Objects(), b.Objects()
	if len(ao) != len(bo) {
		t.Fatalf("object count %d != %d", len(ao), len(bo))
	}
	for i := range ao {
		if ao[i] != bo[i] {
			t.Errorf("object %d: %+v != %+v", i, ao[i], bo[i])
		}
	}
	if a.Target() != b.Target() {
		t.Errorf("target %v != %v", a.Target(), b.Target())
	}
}
