package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/api"
)

type BoardRepositoryTestSuite struct {
	suite.Suite
	server   *httptest.Server
	status   int
	response string
	paths    []string
}

func (s *BoardRepositoryTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.response = `[]`
	s.paths = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
}

func (s *BoardRepositoryTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *BoardRepositoryTestSuite) newRepo() *api.BoardRepository {
	client, err := api.NewClient(api.Config{
		BaseURL:     s.server.URL,
		TokenSource: api.StaticToken("abc123"),
	})
	s.Require().NoError(err)
	return api.NewBoardRepository(client)
}

func (s *BoardRepositoryTestSuite) TestListDecodesBareArray() {
	s.response = `[{"id":"b1","name":"Ops","slug":"ops"},{"id":"b2","name":"Research","slug":"research"}]`

	boards, err := s.newRepo().List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(boards, 2)
	s.Equal("Ops", boards[0].Name)
	s.Equal("research", boards[1].Slug)
	s.Equal([]string{"/api/v1/boards"}, s.paths)
}

func (s *BoardRepositoryTestSuite) TestListDecodesEnvelope() {
	s.response = `{"boards":[{"id":"b1","name":"Ops","slug":"ops"}]}`

	boards, err := s.newRepo().List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(boards, 1)
	s.Len(s.paths, 1)
}

func (s *BoardRepositoryTestSuite) TestListMapsUnauthorized() {
	s.status = http.StatusUnauthorized
	s.response = `{"detail":"invalid token"}`

	_, err := s.newRepo().List(context.Background())
	s.Require().ErrorIs(err, domain.ErrUnauthorized)
}

func TestBoardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BoardRepositoryTestSuite))
}
