package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/seesaw/internal/seesaw"
)

// Store keeps the seesaw state as one JSON entry inside baseDir.
type Store struct {
	baseDir string
	half    float64
	rng     *rand.Rand
}

func New(baseDir string, half float64) *Store {
	return &Store{
		baseDir: baseDir,
		half:    half,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Path is the file backing the single storage key.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, seesaw.StorageKey+".json")
}

func (s *Store) Save(snap *seesaw.Snapshot) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}

	objects := snap.Objects
	if objects == nil {
		objects = []seesaw.Object{}
	}
	data, err := json.Marshal(seesaw.Snapshot{
		Objects:    objects,
		NextWeight: snap.NextWeight,
		NextColor:  snap.NextColor,
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}

	tmp, err := os.CreateTemp(s.baseDir, seesaw.StorageKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}
	return nil
}

// rawSnapshot mirrors the entry loosely so one bad object does not spoil
// the rest.
type rawSnapshot struct {
	Objects    []json.RawMessage `json:"objects"`
	NextWeight any               `json:"nextWeight"`
	NextColor  any               `json:"nextColor"`
}

type rawObject struct {
	Position any `json:"position"`
	Weight   any `json:"weight"`
	Color    any `json:"color"`
}

// Load reads and sanitises the entry. A missing entry yields nil, nil.
// Objects with non-numeric position or weight are dropped, the rest are
// clamped into range.
func (s *Store) Load() (*seesaw.Snapshot, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", s.Path(), err)
	}

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", s.Path(), seesaw.ErrMalformedState, err)
	}
	if raw.Objects == nil {
		return nil, fmt.Errorf("load %s: %w: no objects array", s.Path(), seesaw.ErrMalformedState)
	}

	snap := &seesaw.Snapshot{Objects: make([]seesaw.Object, 0, len(raw.Objects))}
	for _, msg := range raw.Objects {
		if obj, ok := s.sanitize(msg); ok {
			snap.Objects = append(snap.Objects, obj)
		}
	}

	if w, ok := number(raw.NextWeight); ok && w >= seesaw.MinWeight && w <= seesaw.MaxWeight {
		snap.NextWeight = int(math.Round(w))
	}
	if c, ok := raw.NextColor.(string); ok {
		snap.NextColor = c
	}
	return snap, nil
}

// Clear removes the entry. Clearing a missing entry is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear %s: %w", s.Path(), err)
	}
	return nil
}

func (s *Store) sanitize(msg json.RawMessage) (seesaw.Object, bool) {
	var ro rawObject
	if err := json.Unmarshal(msg, &ro); err != nil {
		return seesaw.Object{}, false
	}
	pos, ok := number(ro.Position)
	if !ok {
		return seesaw.Object{}, false
	}
	w, ok := number(ro.Weight)
	if !ok {
		return seesaw.Object{}, false
	}

	color, ok := ro.Color.(string)
	if !ok {
		color = seesaw.RandomColor(s.rng)
	}
	return seesaw.Object{
		Position: seesaw.Clamp(pos, -s.half, s.half),
		Weight:   int(seesaw.Clamp(math.Round(w), seesaw.MinWeight, seesaw.MaxWeight)),
		Color:    color,
	}, true
}

func number(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
