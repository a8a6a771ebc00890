package sqlc

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const getSession = `-- name: GetSession :one
SELECT id, token, updated_at
FROM sessions
WHERE id = 1
`

func (q *Queries) GetSession(ctx context.Context) (Session, error) {
	row := q.db.QueryRowContext(ctx, getSession)
	var i Session
	err := row.Scan(&i.ID, &i.Token, &i.UpdatedAt)
	return i, err
}

const upsertSession = `-- name: UpsertSession :exec
INSERT INTO sessions (id, token, updated_at)
VALUES (1, ?, ?)
ON CONFLICT (id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
`

type UpsertSessionParams struct {
	Token     string
	UpdatedAt string
}

func (q *Queries) UpsertSession(ctx context.Context, arg UpsertSessionParams) error {
	_, err := q.db.ExecContext(ctx, upsertSession, arg.Token, arg.UpdatedAt)
	return err
}

const deleteSession = `-- name: DeleteSession :exec
DELETE FROM sessions
WHERE id = 1
`

func (q *Queries) DeleteSession(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteSession)
	return err
}

const getAppState = `-- name: GetAppState :one
SELECT key, value, updated_at
FROM app_state
WHERE key = ?
`

func (q *Queries) GetAppState(ctx context.Context, key string) (AppState, error) {
	row := q.db.QueryRowContext(ctx, getAppState, key)
	var i AppState
	err := row.Scan(&i.Key, &i.Value, &i.UpdatedAt)
	return i, err
}

const upsertAppState = `-- name: UpsertAppState :exec
INSERT INTO app_state (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

type UpsertAppStateParams struct {
	Key       string
	Value     string
	UpdatedAt string
}

func (q *Queries) UpsertAppState(ctx context.Context, arg UpsertAppStateParams) error {
	_, err := q.db.ExecContext(ctx, upsertAppState, arg.Key, arg.Value, arg.UpdatedAt)
	return err
}
