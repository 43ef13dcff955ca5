package testutil

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tojos/internal/tojos"
)

func TestProbeStore_ForwardsToOrigin(t *testing.T) {
	p := NewProbeStore(tojos.NewMemory())

	_, err := p.Add("a")
	require.NoError(t, err)

	recs, err := p.Select(tojos.All)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	assert.Equal(t, int64(1), p.Adds())
	assert.Equal(t, int64(1), p.Selects())
	assert.Equal(t, "probe over memory (1 rows)", p.String())

	require.NoError(t, p.Close())
	assert.Equal(t, int64(1), p.Closes())
}

func TestProbeStore_Failures(t *testing.T) {
	boom := errors.New("boom")
	p := NewProbeStore(tojos.NewMemory())
	p.FailAdd(boom)
	p.FailSelect(boom)

	_, err := p.Add("a")
	assert.Same(t, boom, err)

	_, err = p.Select(tojos.All)
	assert.Same(t, boom, err)
}

func TestProbeStore_DetectsMixedCalls(t *testing.T) {
	p := NewProbeStore(tojos.NewMemory())
	p.Block()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = p.Select(tojos.All)
	}()
	<-p.Entered()

	go func() {
		defer wg.Done()
		_, _ = p.Add("a")
	}()
	<-p.Entered()

	p.Unblock()
	wg.Wait()

	assert.True(t, p.Mixed())
}

func TestProbeStore_TracksMaxReaders(t *testing.T) {
	p := NewProbeStore(tojos.NewMemory())
	p.Block()

	const n = 4
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.Select(tojos.All)
		}()
	}
	for i := 0; i < n; i++ {
		select {
		case <-p.Entered():
		case <-time.After(2 * time.Second):
			t.Fatal("select did not enter the store")
		}
	}

	assert.Equal(t, int64(n), p.Readers())
	p.Unblock()
	wg.Wait()

	assert.Equal(t, int64(n), p.MaxReaders())
	assert.Equal(t, int64(0), p.Readers())
	assert.False(t, p.Mixed())
}
