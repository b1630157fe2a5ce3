package session

import "sync"

// Locks hands out one mutex per conversation so that no two turns of the
// same conversation run concurrently. Different conversations proceed in
// parallel. Mutexes are kept for the process lifetime; the number of live
// conversations is small and bounded by the channel side.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{locks: map[string]*sync.Mutex{}}
}

// Acquire blocks until the conversation's turn lock is held and returns
// the release function.
func (l *Locks) Acquire(conversationID string) func() {
	l.mu.Lock()
	m, ok := l.locks[conversationID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[conversationID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
