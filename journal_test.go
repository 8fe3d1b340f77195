package envault

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRecordsInOrder(t *testing.T) {
	j := &Journal{}
	assert.Equal(t, 0, j.Len())

	j.record("first", nil)
	j.record("second", errors.New("boom"))
	j.record("third", nil)

	entries := j.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "third", entries[2].Message)

	assert.False(t, entries[0].Failed())
	assert.True(t, entries[1].Failed())
	assert.EqualError(t, entries[1].Err, "boom")
	assert.False(t, entries[2].Failed())
}

func TestJournalEntriesReturnsCopy(t *testing.T) {
	j := &Journal{}
	j.record("only", nil)

	snapshot := j.Entries()
	j.record("later", nil)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, j.Len())

	snapshot[0].Message = "mutated"
	assert.Equal(t, "only", j.Entries()[0].Message)
}

func TestJournalLast(t *testing.T) {
	j := &Journal{}

	_, ok := j.Last()
	assert.False(t, ok)

	j.record("first", nil)
	j.record("second", nil)

	last, ok := j.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Message)
}

func TestJournalTimestamps(t *testing.T) {
	j := &Journal{}
	before := time.Now()
	j.record("op", nil)
	after := time.Now()

	entry, ok := j.Last()
	require.True(t, ok)
	assert.False(t, entry.Time.Before(before))
	assert.False(t, entry.Time.After(after))
}
