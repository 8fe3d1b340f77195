package envault

import (
	"time"
)

// Entry is one record in a Vault's journal.
type Entry struct {
	// Time is when the operation finished.
	Time time.Time

	// Message describes the operation and its outcome.
	Message string

	// Err holds the failure. It is nil for successful operations.
	Err error
}

// Failed reports whether the entry records a failure.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Journal is the in-memory, append-only record of every save and load a
// Vault has performed, in execution order. It exists for diagnostics after
// the fact: entries are never pruned, never persisted, and accumulate for
// the lifetime of the Vault.
//
// A Journal is not safe for concurrent use. It inherits the Vault's
// single-goroutine contract.
type Journal struct {
	entries []Entry
}

func (j *Journal) record(message string, err error) {
	j.entries = append(j.entries, Entry{
		Time:    time.Now(),
		Message: message,
		Err:     err,
	})
}

// Entries returns the recorded entries, oldest first. The returned slice is
// a copy, so holding on to it is safe across later operations.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Last returns the most recent entry. The second return value is false when
// the journal is still empty.
func (j *Journal) Last() (Entry, bool) {
	if len(j.entries) == 0 {
		return Entry{}, false
	}
	return j.entries[len(j.entries)-1], true
}
