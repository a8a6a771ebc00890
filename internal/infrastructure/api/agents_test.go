package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/api"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

type AgentRepositoryTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []recordedRequest
	status   int
	response string
}

func (s *AgentRepositoryTestSuite) SetupTest() {
	s.requests = nil
	s.status = http.StatusOK
	s.response = `{}`
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.requests = append(s.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.RequestURI(),
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
}

func (s *AgentRepositoryTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *AgentRepositoryTestSuite) newRepo(token string) *api.AgentRepository {
	var source api.TokenSource
	if token != "" {
		source = api.StaticToken(token)
	}
	client, err := api.NewClient(api.Config{
		BaseURL:     s.server.URL,
		TokenSource: source,
	})
	s.Require().NoError(err)
	return api.NewAgentRepository(client)
}

func (s *AgentRepositoryTestSuite) TestCreateIssuesSinglePOSTWithDefaults() {
	s.response = `{"id":"a1","name":"Deploy bot","board_id":"b1","heartbeat_config":{"every":"10m","target":"last"}}`
	service := application.NewAgentService(s.newRepo("abc123"))

	agent, err := service.CreateAgent(context.Background(), application.CreateAgentInput{
		Name:    "Deploy bot",
		BoardID: "b1",
	})
	s.Require().NoError(err)
	s.Equal("a1", agent.ID)

	s.Require().Len(s.requests, 1, "exactly one request")
	req := s.requests[0]
	s.Equal(http.MethodPost, req.method)
	s.Equal("/api/v1/agents", req.path)
	s.Equal("Bearer abc123", req.auth)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(req.body, &body))
	s.Equal("Deploy bot", body["name"])
	s.Equal("b1", body["board_id"])
	hb, ok := body["heartbeat_config"].(map[string]any)
	s.Require().True(ok)
	s.Equal("10m", hb["every"])
	s.Equal("last", hb["target"])
}

func (s *AgentRepositoryTestSuite) TestUpdatePatchesOnlyChangedFields() {
	s.response = `{"id":"a1","name":"Deploy bot","board_id":"b2","heartbeat_config":{"every":"10m","target":"last"}}`
	repo := s.newRepo("abc123")

	boardID := "b2"
	_, err := repo.Update(context.Background(), "a1", domain.AgentPatch{BoardID: &boardID})
	s.Require().NoError(err)

	s.Require().Len(s.requests, 1)
	req := s.requests[0]
	s.Equal(http.MethodPatch, req.method)
	s.Equal("/api/v1/agents/a1", req.path)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(req.body, &body))
	s.Equal("b2", body["board_id"])
	s.NotContains(body, "name")
	s.NotContains(body, "heartbeat_config")
}

func (s *AgentRepositoryTestSuite) TestListSendsFiltersAndDecodesBareArray() {
	s.response = `[{"id":"a1","name":"Deploy bot","board_id":"b1","heartbeat_config":{"every":"10m","target":"last"}}]`
	repo := s.newRepo("abc123")

	agents, err := repo.List(context.Background(), domain.AgentFilter{BoardID: "b1", NameQuery: "deploy"})
	s.Require().NoError(err)
	s.Require().Len(agents, 1)
	s.Equal("Deploy bot", agents[0].Name)
	s.Equal("last", agents[0].Heartbeat.Target)

	s.Require().Len(s.requests, 1)
	s.Equal("/api/v1/agents?board_id=b1&q=deploy", s.requests[0].path)
}

func (s *AgentRepositoryTestSuite) TestListDecodesEnvelope() {
	s.response = `{"agents":[{"id":"a1","name":"Deploy bot","board_id":"b1","heartbeat_config":{"every":"10m","target":"last"}}]}`
	repo := s.newRepo("abc123")

	agents, err := repo.List(context.Background(), domain.AgentFilter{})
	s.Require().NoError(err)
	s.Require().Len(agents, 1)
	s.Len(s.requests, 1, "envelope fallback must not issue a second request")
}

func (s *AgentRepositoryTestSuite) TestGetByIDMapsNotFound() {
	s.status = http.StatusNotFound
	s.response = `{"detail":"agent not found"}`
	repo := s.newRepo("abc123")

	_, err := repo.GetByID(context.Background(), "a1")
	s.Require().ErrorIs(err, domain.ErrAgentNotFound)
}

func (s *AgentRepositoryTestSuite) TestUnauthorizedMapsToSentinel() {
	s.status = http.StatusUnauthorized
	s.response = `{"detail":"invalid token"}`
	repo := s.newRepo("stale")

	_, err := repo.List(context.Background(), domain.AgentFilter{})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)
}

func (s *AgentRepositoryTestSuite) TestNoAuthorizationHeaderWithoutToken() {
	s.response = `[]`
	repo := s.newRepo("")

	_, err := repo.List(context.Background(), domain.AgentFilter{})
	s.Require().NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal("", s.requests[0].auth)
}

func TestAgentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AgentRepositoryTestSuite))
}
