package seesaw

import (
	"fmt"
	"time"
)

const DefaultJournalCapacity = 100

type Entry struct {
	Time time.Time
	Text string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format("15:04:05"), e.Text)
}

// Journal keeps the most recent entries, newest first.
type Journal struct {
	entries  []Entry
	capacity int
	now      func() time.Time
}

func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

func (j *Journal) Add(format string, args ...any) Entry {
	e := Entry{Time: j.now(), Text: fmt.Sprintf(format, args...)}
	j.entries = append([]Entry{e}, j.entries...)
	if len(j.entries) > j.capacity {
		j.entries = j.entries[:j.capacity]
	}
	return e
}

// Entries returns a copy, newest first.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Len() int { return len(j.entries) }
