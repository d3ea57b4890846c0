// Package activity keeps a bounded, in-memory feed of request outcome lines
// for display in the UI. Nothing here is persisted.
package activity

import (
	"fmt"
	"sync"
	"time"
)

const defaultLimit = 200

// Entry is one feed line.
type Entry struct {
	At   time.Time
	Line string
}

// Feed coordinates concurrent appends and snapshot reads. Oldest entries are
// dropped once the limit is reached.
type Feed struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewFeed builds a feed keeping at most limit entries; limit <= 0 uses the
// default.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Feed{limit: limit}
}

// Add appends one line to the feed.
func (f *Feed) Add(line string) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, Entry{At: time.Now(), Line: line})
	if len(f.entries) > f.limit {
		f.entries = f.entries[len(f.entries)-f.limit:]
	}
}

// Addf formats and appends one line.
func (f *Feed) Addf(format string, args ...any) {
	f.Add(fmt.Sprintf(format, args...))
}

// Snapshot returns a copy of the feed, oldest first.
func (f *Feed) Snapshot() []Entry {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(f.entries))
	copy(dup, f.entries)
	return dup
}

// Last returns the newest entry, if any.
func (f *Feed) Last() (Entry, bool) {
	if f == nil {
		return Entry{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.entries) == 0 {
		return Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}
