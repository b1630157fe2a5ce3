package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx, "c1")
	require.ErrorIs(t, err, ErrNotFound)

	rec := NewRecord("greeting")
	rec.Profile["first_name"] = "Max"
	require.NoError(t, store.Save(ctx, "c1", rec))

	got, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "greeting", got.State)
	assert.Equal(t, "Max", got.Profile["first_name"])
	assert.False(t, got.UpdatedAt.IsZero())

	// Loaded records are copies; mutating one does not leak into the store.
	got.Profile["first_name"] = "Moritz"
	again, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Max", again.Profile["first_name"])
}

func TestMemoryStoreIsolatesConversations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "a", NewRecord("ask_email")))
	require.NoError(t, store.Save(ctx, "b", NewRecord("completed")))

	a, err := store.Load(ctx, "a")
	require.NoError(t, err)
	b, err := store.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "ask_email", a.State)
	assert.Equal(t, "completed", b.State)
}

func TestLocksSerializeSameConversation(t *testing.T) {
	locks := NewLocks()

	release := locks.Acquire("c1")

	entered := make(chan struct{})
	go func() {
		r := locks.Acquire("c1")
		close(entered)
		r()
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-entered:
		t.Fatal("second turn entered while the first still held the lock")
	default:
	}

	release()
	<-entered
}

func TestLocksAllowDifferentConversations(t *testing.T) {
	locks := NewLocks()

	release := locks.Acquire("c1")
	defer release()

	done := make(chan struct{})
	go func() {
		r := locks.Acquire("c2")
		r()
		close(done)
	}()
	<-done
}

func TestLocksConcurrentAcquire(t *testing.T) {
	locks := NewLocks()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire("same")
			counter++
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, counter)
}
