package model

import (
	"sort"
	"time"
)

// WeightEntry is one body-weight measurement for a calendar date.
type WeightEntry struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// WeightLog is the ordered collection of weight entries. It holds at most
// one entry per calendar date and stays sorted ascending by date.
type WeightLog struct {
	Entries []WeightEntry `json:"entries"`
}

// Upsert records a measurement. An entry for the same calendar date is
// replaced in place; otherwise the entry is inserted and the log re-sorted.
func (l *WeightLog) Upsert(entry WeightEntry) {
	day := entry.Date.Format(DateOnly)
	for i, e := range l.Entries {
		if e.Date.Format(DateOnly) == day {
			l.Entries[i] = entry
			return
		}
	}
	l.Entries = append(l.Entries, entry)
	sort.Slice(l.Entries, func(i, j int) bool {
		return l.Entries[i].Date.Before(l.Entries[j].Date)
	})
}

// Latest returns the most recent entry, or false for an empty log.
func (l *WeightLog) Latest() (WeightEntry, bool) {
	if len(l.Entries) == 0 {
		return WeightEntry{}, false
	}
	return l.Entries[len(l.Entries)-1], true
}
