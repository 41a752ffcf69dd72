package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/maniksharma/vitalog/internal/domain"
)

// ErrNoSession indicates no stored session exists (logged out).
var ErrNoSession = errors.New("no stored session")

// Session is the persisted authentication state.
type Session struct {
	Token   string
	User    domain.UserProfile
	SavedAt time.Time
}

// SessionRepo reads and writes the single stored session row.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a SessionRepo over an open state database.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get loads the stored session, or ErrNoSession when logged out.
func (r *SessionRepo) Get(ctx context.Context) (*Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT token, user_json, saved_at FROM session WHERE id = 1`)

	var token, userJSON, savedAt string
	if err := row.Scan(&token, &userJSON, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	s := &Session{Token: token}
	if err := sonic.UnmarshalString(userJSON, &s.User); err != nil {
		return nil, fmt.Errorf("decoding stored profile: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
		s.SavedAt = t
	}
	return s, nil
}

// Put stores the session, replacing any previous one.
func (r *SessionRepo) Put(ctx context.Context, s *Session) error {
	userJSON, err := sonic.MarshalString(s.User)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	savedAt := s.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)`,
		s.Token, userJSON, savedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
