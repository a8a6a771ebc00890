package domain

import "time"

// Heartbeat target values understood by the backend. "last" means the
// agent posts its heartbeat into the channel it last spoke in.
const (
	HeartbeatTargetLast = "last"
)

// DefaultHeartbeatEvery is applied when the interval field is left blank.
const DefaultHeartbeatEvery = "10m"

type HeartbeatConfig struct {
	Every  string
	Target string
}

// Agent is an automated worker attached to exactly one board. Identity and
// lifecycle are server-owned; the client only ever holds a transient copy.
type Agent struct {
	ID               string
	BoardID          string
	Name             string
	Heartbeat        HeartbeatConfig
	IdentityTemplate string
	SoulTemplate     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AgentPatch carries a partial update. Nil fields are left untouched by
// the backend.
type AgentPatch struct {
	Name             *string
	BoardID          *string
	Heartbeat        *HeartbeatConfig
	IdentityTemplate *string
	SoulTemplate     *string
}

type AgentFilter struct {
	BoardID   string
	NameQuery string
}
