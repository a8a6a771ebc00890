package domain

import "context"

type AgentRepository interface {
	Create(ctx context.Context, agent Agent) (Agent, error)
	Update(ctx context.Context, agentID string, patch AgentPatch) (Agent, error)
	GetByID(ctx context.Context, agentID string) (Agent, error)
	List(ctx context.Context, filter AgentFilter) ([]Agent, error)
}

type BoardRepository interface {
	List(ctx context.Context) ([]Board, error)
}

type SessionRepository interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	GetActiveBoard(ctx context.Context) (string, error)
	SetActiveBoard(ctx context.Context, boardID string) error
}
