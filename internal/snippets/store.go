package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/livenav/internal/db"
)

// Store manages persistence of snippets.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a new snippet store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Insert saves a new snippet that expires after the given number of days and
// returns its ID.
func (s *Store) Insert(ctx context.Context, title, content string, expiresDays int) (string, error) {
	id := uuid.NewString()
	created := s.now().UTC()
	expires := created.AddDate(0, 0, expiresDays)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snippets (id, title, content, created, expires) VALUES (?, ?, ?, ?, ?)`,
		id, title, content, created, expires,
	)
	if err != nil {
		return "", fmt.Errorf("inserting snippet: %w", err)
	}
	return id, nil
}

// Get returns a snippet by ID. Missing and expired snippets both yield
// ErrNoRecord.
func (s *Store) Get(ctx context.Context, id string) (*Snippet, error) {
	var sn Snippet
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created, expires FROM snippets
		 WHERE id = ? AND expires > ?`, id, s.now().UTC(),
	).Scan(&sn.ID, &sn.Title, &sn.Content, &sn.Created, &sn.Expires)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("getting snippet: %w", err)
	}
	return &sn, nil
}

// Latest returns up to limit unexpired snippets, newest first.
func (s *Store) Latest(ctx context.Context, limit int) ([]Snippet, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created, expires FROM snippets
		 WHERE expires > ? ORDER BY created DESC LIMIT ?`, s.now().UTC(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	defer rows.Close()

	var out []Snippet
	for rows.Next() {
		var sn Snippet
		if err := rows.Scan(&sn.ID, &sn.Title, &sn.Content, &sn.Created, &sn.Expires); err != nil {
			return nil, fmt.Errorf("scanning snippet: %w", err)
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}
