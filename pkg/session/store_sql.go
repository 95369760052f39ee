package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLStore keeps sessions in the sessions table. The queries use only
// REPLACE INTO and ? placeholders, so MySQL and SQLite both work.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *SQLStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *SQLStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

func (s *SQLStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var data []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT data FROM sessions
		WHERE token = ? AND expiry > ?
	`, token, time.Now().UnixNano()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find session: %w", err)
	}
	return data, true, nil
}

func (s *SQLStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	_, err := s.DB.ExecContext(ctx, `
		REPLACE INTO sessions (token, data, expiry)
		VALUES (?, ?, ?)
	`, token, b, expiry.UnixNano())
	if err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (s *SQLStore) DeleteCtx(ctx context.Context, token string) error {
	_, err := s.DB.ExecContext(ctx, `
		DELETE FROM sessions WHERE token = ?
	`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Cleanup removes expired rows and reports how many went.
func (s *SQLStore) Cleanup(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM sessions WHERE expiry <= ?
	`, time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("cleanup sessions: %w", err)
	}
	return res.RowsAffected()
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *SQLStore) RunCleanup(ctx context.Context, interval time.Duration, onErr func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Cleanup(ctx); err != nil && onErr != nil {
				onErr(err)
			}
		}
	}
}
