package editor

import (
	"sort"
	"time"
)

// TimingEntry is one named operation and its last measured duration
type TimingEntry struct {
	Name    string
	Elapsed time.Duration
}

// Timings records the most recent elapsed time per interaction operation.
// It exists for the overlay only; nothing reads it back internally.
type Timings struct {
	ops map[string]time.Duration
}

// NewTimings creates an empty timing table
func NewTimings() *Timings {
	return &Timings{ops: make(map[string]time.Duration)}
}

// Observe stores the elapsed time for a named operation
func (t *Timings) Observe(name string, elapsed time.Duration) {
	t.ops[name] = elapsed
}

// Entries returns all measurements sorted by operation name
func (t *Timings) Entries() []TimingEntry {
	entries := make([]TimingEntry, 0, len(t.ops))
	for name, elapsed := range t.ops {
		entries = append(entries, TimingEntry{Name: name, Elapsed: elapsed})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
