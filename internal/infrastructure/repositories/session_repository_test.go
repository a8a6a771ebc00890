package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/db"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/repositories"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	adapter *db.SQLiteAdapter
	repo    *repositories.SessionRepository
}

func (s *SessionRepositoryTestSuite) SetupTest() {
	dbPath := filepath.Join(s.T().TempDir(), "state.db")

	adapter, err := db.NewSQLiteAdapter(dbPath)
	s.Require().NoError(err)
	s.adapter = adapter

	s.Require().NoError(db.RunMigrations(context.Background(), adapter.Raw()))
	s.repo = repositories.NewSessionRepository(adapter)
}

func (s *SessionRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.adapter.Close())
}

func (s *SessionRepositoryTestSuite) TestGetTokenWithoutSession() {
	token, err := s.repo.GetToken(context.Background())
	s.Require().NoError(err)
	s.Equal("", token)
}

func (s *SessionRepositoryTestSuite) TestSetAndGetToken() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetToken(ctx, "abc123"))
	token, err := s.repo.GetToken(ctx)
	s.Require().NoError(err)
	s.Equal("abc123", token)
}

func (s *SessionRepositoryTestSuite) TestSetTokenOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetToken(ctx, "first"))
	s.Require().NoError(s.repo.SetToken(ctx, "second"))

	token, err := s.repo.GetToken(ctx)
	s.Require().NoError(err)
	s.Equal("second", token)
}

func (s *SessionRepositoryTestSuite) TestSetTokenRejectsEmpty() {
	s.Require().Error(s.repo.SetToken(context.Background(), ""))
}

func (s *SessionRepositoryTestSuite) TestClearToken() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetToken(ctx, "abc123"))
	s.Require().NoError(s.repo.ClearToken(ctx))

	token, err := s.repo.GetToken(ctx)
	s.Require().NoError(err)
	s.Equal("", token)
}

func (s *SessionRepositoryTestSuite) TestClearTokenWithoutSession() {
	s.Require().NoError(s.repo.ClearToken(context.Background()))
}

func (s *SessionRepositoryTestSuite) TestActiveBoardRoundTrip() {
	ctx := context.Background()

	board, err := s.repo.GetActiveBoard(ctx)
	s.Require().NoError(err)
	s.Equal("", board)

	s.Require().NoError(s.repo.SetActiveBoard(ctx, "b1"))
	s.Require().NoError(s.repo.SetActiveBoard(ctx, "b2"))

	board, err = s.repo.GetActiveBoard(ctx)
	s.Require().NoError(err)
	s.Equal("b2", board)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
