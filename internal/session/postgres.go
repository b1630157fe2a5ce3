package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PostgresStore keeps sessions in a single table:
//
//	CREATE TABLE sessions (
//	    conversation_id TEXT PRIMARY KEY,
//	    record          JSONB NOT NULL,
//	    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context, conversationID string) (*Record, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT record FROM sessions WHERE conversation_id = $1
	`, conversationID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: select: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	if rec.Profile == nil {
		rec.Profile = map[string]string{}
	}
	return &rec, nil
}

func (s *PostgresStore) Save(ctx context.Context, conversationID string, rec *Record) error {
	rec.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (conversation_id, record, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (conversation_id)
		DO UPDATE SET record = EXCLUDED.record, updated_at = now()
	`, conversationID, raw)
	if err != nil {
		return fmt.Errorf("session: upsert: %w", err)
	}
	return nil
}
