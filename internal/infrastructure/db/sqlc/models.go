package sqlc

type Session struct {
	ID        int64
	Token     string
	UpdatedAt string
}

type AppState struct {
	Key       string
	Value     string
	UpdatedAt string
}
