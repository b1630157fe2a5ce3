package customer

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository implements Repository in process memory. It backs
// db-less runs and tests the same way the Postgres repository does,
// including the all-or-nothing Persist contract (trivially, as one
// append under the lock).
type MemoryRepository struct {
	mu            sync.Mutex
	registrations []Registration
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.registrations {
		if strings.EqualFold(reg.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Persist(_ context.Context, reg *Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, *reg)
	return nil
}

// Registrations returns a copy of everything persisted so far.
func (r *MemoryRepository) Registrations() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Registration, len(r.registrations))
	copy(out, r.registrations)
	return out
}
