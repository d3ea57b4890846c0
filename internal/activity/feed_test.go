package activity

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedAddAndSnapshot(t *testing.T) {
	f := NewFeed(0)
	_, ok := f.Last()
	require.False(t, ok)
	require.Nil(t, f.Snapshot())

	f.Add("[GET /config/name] ok")
	f.Addf("[PATCH /config] %d ok", 200)

	snap := f.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "[GET /config/name] ok", snap[0].Line)
	assert.Equal(t, "[PATCH /config] 200 ok", snap[1].Line)

	last, ok := f.Last()
	require.True(t, ok)
	assert.Equal(t, "[PATCH /config] 200 ok", last.Line)

	// Snapshot is a copy.
	snap[0].Line = "mutated"
	assert.Equal(t, "[GET /config/name] ok", f.Snapshot()[0].Line)
}

func TestFeedBounded(t *testing.T) {
	f := NewFeed(3)
	for i := 0; i < 10; i++ {
		f.Addf("line %d", i)
	}
	snap := f.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "line 7", snap[0].Line)
	assert.Equal(t, "line 9", snap[2].Line)
}

func TestFeedConcurrentAppends(t *testing.T) {
	f := NewFeed(1000)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.Add(fmt.Sprintf("worker %d line %d", n, j))
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, f.Snapshot(), 400)
}

func TestNilFeedIsSafe(t *testing.T) {
	var f *Feed
	f.Add("ignored")
	assert.Nil(t, f.Snapshot())
	_, ok := f.Last()
	assert.False(t, ok)
}
