package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

type CreateAgentInput struct {
	Name             string
	BoardID          string
	HeartbeatEvery   string
	HeartbeatTarget  string
	IdentityTemplate string
	SoulTemplate     string
}

type UpdateAgentInput struct {
	Name             *string
	BoardID          *string
	HeartbeatEvery   *string
	HeartbeatTarget  *string
	IdentityTemplate *string
	SoulTemplate     *string
}

type AgentService struct {
	repo domain.AgentRepository
}

func NewAgentService(repo domain.AgentRepository) *AgentService {
	return &AgentService{repo: repo}
}

// CreateAgent validates the form fields and issues a single create call.
// Heartbeat interval and target fall back to the built-in defaults when
// left blank; so do the identity and soul templates.
func (s *AgentService) CreateAgent(ctx context.Context, input CreateAgentInput) (domain.Agent, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Agent{}, domain.ErrNameRequired
	}
	boardID := strings.TrimSpace(input.BoardID)
	if boardID == "" {
		return domain.Agent{}, domain.ErrBoardRequired
	}

	agent := domain.Agent{
		Name:    name,
		BoardID: boardID,
		Heartbeat: domain.HeartbeatConfig{
			Every:  heartbeatEveryOrDefault(input.HeartbeatEvery),
			Target: heartbeatTargetOrDefault(input.HeartbeatTarget),
		},
		IdentityTemplate: templateOrDefault(input.IdentityTemplate, DefaultIdentityTemplate),
		SoulTemplate:     templateOrDefault(input.SoulTemplate, DefaultSoulTemplate),
	}
	return s.repo.Create(ctx, agent)
}

func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, input UpdateAgentInput) (domain.Agent, error) {
	if err := validAgentID(agentID); err != nil {
		return domain.Agent{}, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return domain.Agent{}, domain.ErrNameRequired
	}
	if input.BoardID != nil && strings.TrimSpace(*input.BoardID) == "" {
		return domain.Agent{}, domain.ErrBoardRequired
	}

	patch := domain.AgentPatch{
		Name:             trimStringPointer(input.Name),
		BoardID:          trimStringPointer(input.BoardID),
		IdentityTemplate: input.IdentityTemplate,
		SoulTemplate:     input.SoulTemplate,
	}
	if input.HeartbeatEvery != nil || input.HeartbeatTarget != nil {
		hb := domain.HeartbeatConfig{
			Every:  domain.DefaultHeartbeatEvery,
			Target: domain.HeartbeatTargetLast,
		}
		if input.HeartbeatEvery != nil {
			hb.Every = heartbeatEveryOrDefault(*input.HeartbeatEvery)
		}
		if input.HeartbeatTarget != nil {
			hb.Target = heartbeatTargetOrDefault(*input.HeartbeatTarget)
		}
		patch.Heartbeat = &hb
	}
	return s.repo.Update(ctx, agentID, patch)
}

func (s *AgentService) GetAgent(ctx context.Context, agentID string) (domain.Agent, error) {
	if err := validAgentID(agentID); err != nil {
		return domain.Agent{}, err
	}
	agent, err := s.repo.GetByID(ctx, agentID)
	if err != nil {
		return domain.Agent{}, err
	}
	agent.IdentityTemplate = templateOrDefault(agent.IdentityTemplate, DefaultIdentityTemplate)
	agent.SoulTemplate = templateOrDefault(agent.SoulTemplate, DefaultSoulTemplate)
	return agent, nil
}

func (s *AgentService) ListAgents(ctx context.Context, filters ListAgentFilters) ([]domain.Agent, error) {
	return s.repo.List(ctx, domain.AgentFilter{
		BoardID:   strings.TrimSpace(filters.BoardID),
		NameQuery: strings.TrimSpace(filters.NameQuery),
	})
}

func validAgentID(agentID string) error {
	if strings.TrimSpace(agentID) == "" {
		return domain.ErrAgentIDInvalid
	}
	if _, err := uuid.Parse(agentID); err != nil {
		return domain.ErrAgentIDInvalid
	}
	return nil
}

func heartbeatEveryOrDefault(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return domain.DefaultHeartbeatEvery
	}
	return v
}

func heartbeatTargetOrDefault(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return domain.HeartbeatTargetLast
	}
	return v
}

func trimStringPointer(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
