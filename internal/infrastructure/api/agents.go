package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

type heartbeatPayload struct {
	Every  string `json:"every"`
	Target string `json:"target"`
}

type agentPayload struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	BoardID          string           `json:"board_id"`
	Heartbeat        heartbeatPayload `json:"heartbeat_config"`
	IdentityTemplate string           `json:"identity_template"`
	SoulTemplate     string           `json:"soul_template"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type createAgentPayload struct {
	Name             string           `json:"name"`
	BoardID          string           `json:"board_id"`
	Heartbeat        heartbeatPayload `json:"heartbeat_config"`
	IdentityTemplate string           `json:"identity_template"`
	SoulTemplate     string           `json:"soul_template"`
}

type patchAgentPayload struct {
	Name             *string           `json:"name,omitempty"`
	BoardID          *string           `json:"board_id,omitempty"`
	Heartbeat        *heartbeatPayload `json:"heartbeat_config,omitempty"`
	IdentityTemplate *string           `json:"identity_template,omitempty"`
	SoulTemplate     *string           `json:"soul_template,omitempty"`
}

// AgentRepository implements domain.AgentRepository against the backend's
// /api/v1/agents resource.
type AgentRepository struct {
	client *Client
}

func NewAgentRepository(client *Client) *AgentRepository {
	return &AgentRepository{client: client}
}

func (r *AgentRepository) Create(ctx context.Context, agent domain.Agent) (domain.Agent, error) {
	payload := createAgentPayload{
		Name:    agent.Name,
		BoardID: agent.BoardID,
		Heartbeat: heartbeatPayload{
			Every:  agent.Heartbeat.Every,
			Target: agent.Heartbeat.Target,
		},
		IdentityTemplate: agent.IdentityTemplate,
		SoulTemplate:     agent.SoulTemplate,
	}
	var created agentPayload
	if err := r.client.post(ctx, "/api/v1/agents", payload, &created); err != nil {
		return domain.Agent{}, mapAgentError(err)
	}
	return fromAgentPayload(created), nil
}

func (r *AgentRepository) Update(ctx context.Context, agentID string, patch domain.AgentPatch) (domain.Agent, error) {
	payload := patchAgentPayload{
		Name:             patch.Name,
		BoardID:          patch.BoardID,
		IdentityTemplate: patch.IdentityTemplate,
		SoulTemplate:     patch.SoulTemplate,
	}
	if patch.Heartbeat != nil {
		payload.Heartbeat = &heartbeatPayload{
			Every:  patch.Heartbeat.Every,
			Target: patch.Heartbeat.Target,
		}
	}
	var updated agentPayload
	if err := r.client.patch(ctx, "/api/v1/agents/"+url.PathEscape(agentID), payload, &updated); err != nil {
		return domain.Agent{}, mapAgentError(err)
	}
	return fromAgentPayload(updated), nil
}

func (r *AgentRepository) GetByID(ctx context.Context, agentID string) (domain.Agent, error) {
	var agent agentPayload
	if err := r.client.get(ctx, "/api/v1/agents/"+url.PathEscape(agentID), &agent); err != nil {
		return domain.Agent{}, mapAgentError(err)
	}
	return fromAgentPayload(agent), nil
}

func (r *AgentRepository) List(ctx context.Context, filter domain.AgentFilter) ([]domain.Agent, error) {
	path := "/api/v1/agents"
	query := url.Values{}
	if filter.BoardID != "" {
		query.Set("board_id", filter.BoardID)
	}
	if filter.NameQuery != "" {
		query.Set("q", filter.NameQuery)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	body, err := r.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, mapAgentError(err)
	}
	agents, err := decodeAgentList(body)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Agent, 0, len(agents))
	for _, item := range agents {
		result = append(result, fromAgentPayload(item))
	}
	return result, nil
}

// decodeAgentList accepts both a bare JSON array and the
// {"agents": [...]} envelope some deployments answer with.
func decodeAgentList(body []byte) ([]agentPayload, error) {
	var agents []agentPayload
	if err := json.Unmarshal(body, &agents); err == nil {
		return agents, nil
	}
	var envelope struct {
		Agents []agentPayload `json:"agents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("api: decoding agent list: %w", err)
	}
	return envelope.Agents, nil
}

func fromAgentPayload(p agentPayload) domain.Agent {
	return domain.Agent{
		ID:      p.ID,
		BoardID: p.BoardID,
		Name:    p.Name,
		Heartbeat: domain.HeartbeatConfig{
			Every:  p.Heartbeat.Every,
			Target: p.Heartbeat.Target,
		},
		IdentityTemplate: p.IdentityTemplate,
		SoulTemplate:     p.SoulTemplate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func mapAgentError(err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusNotFound:
			return domain.ErrAgentNotFound
		case http.StatusUnauthorized:
			return domain.ErrUnauthorized
		}
	}
	return err
}
