// Package session stores per-conversation dialog state. A turn is always
// load → mutate → save; the keyed lock in this package is what serializes
// turns of the same conversation.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks a conversation without durable state yet. Callers
// start a fresh record.
var ErrNotFound = errors.New("session: not found")

// Record is the durable state of one conversation.
type Record struct {
	State     string            `json:"state"`
	Profile   map[string]string `json:"profile"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewRecord returns an empty record in the given initial state.
func NewRecord(state string) *Record {
	return &Record{State: state, Profile: map[string]string{}}
}

// Store persists conversation records.
type Store interface {
	Load(ctx context.Context, conversationID string) (*Record, error)
	Save(ctx context.Context, conversationID string, rec *Record) error
}
