package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/db"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/db/sqlc"
)

const activeBoardKey = "active_board_id"

// SessionRepository persists the single token slot and small UI state in
// the local state database.
type SessionRepository struct {
	db      db.Adapter
	queries *sqlc.Queries
}

func NewSessionRepository(adapter db.Adapter) *SessionRepository {
	return &SessionRepository{
		db:      adapter,
		queries: adapter.Queries(),
	}
}

// GetToken returns the stored token, or "" when no session exists.
func (r *SessionRepository) GetToken(ctx context.Context) (string, error) {
	session, err := r.queries.GetSession(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return session.Token, nil
}

func (r *SessionRepository) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for set token: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	err = qtx.UpsertSession(ctx, sqlc.UpsertSessionParams{
		Token:     token,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SessionRepository) ClearToken(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for clear token: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.queries.WithTx(tx).DeleteSession(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// GetActiveBoard returns the remembered board id, or "" when none is set.
func (r *SessionRepository) GetActiveBoard(ctx context.Context) (string, error) {
	state, err := r.queries.GetAppState(ctx, activeBoardKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get active board: %w", err)
	}
	return state.Value, nil
}

func (r *SessionRepository) SetActiveBoard(ctx context.Context, boardID string) error {
	if boardID == "" {
		return fmt.Errorf("board id is required")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for set active board: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	err = qtx.UpsertAppState(ctx, sqlc.UpsertAppStateParams{
		Key:       activeBoardKey,
		Value:     boardID,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return tx.Commit()
}
