package seesaw

import (
	"testing"
	"time"
)

func TestJournal_NewestFirst(t *testing.T) {
	j := NewJournal(3)
	base := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	tick := 0
	j.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	for i := 0; i < 5; i++ {
		j.Add("entry %d", i)
	}

	got := j.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"entry 4", "entry 3", "entry 2"} {
		if got[i].Text != want {
			t.Errorf("entry %d = %q, want %q", i, got[i].Text, want)
		}
	}
	if s := got[0].String(); s != "[13:04:10] entry 4" {
		t.Errorf("String() = %q", s)
	}
}

func TestJournal_DefaultCapacity(t *testing.T) {
	j := NewJournal(0)
	for i := 0; i < DefaultJournalCapacity+10; i++ {
		j.Add("x")
	}
	if j.Len() != DefaultJournalCapacity {
		t.Errorf("len = %d, want %d", j.Len(), DefaultJournalCapacity)
	}
}
