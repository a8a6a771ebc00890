package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

// fakeSessionStore is an in-memory SessionRepository.
type fakeSessionStore struct {
	token       string
	activeBoard string
	setCalls    int
}

func (f *fakeSessionStore) GetToken(_ context.Context) (string, error) {
	return f.token, nil
}

func (f *fakeSessionStore) SetToken(_ context.Context, token string) error {
	f.token = token
	f.setCalls++
	return nil
}

func (f *fakeSessionStore) ClearToken(_ context.Context) error {
	f.token = ""
	return nil
}

func (f *fakeSessionStore) GetActiveBoard(_ context.Context) (string, error) {
	return f.activeBoard, nil
}

func (f *fakeSessionStore) SetActiveBoard(_ context.Context, boardID string) error {
	f.activeBoard = boardID
	return nil
}

type SessionServiceTestSuite struct {
	suite.Suite
	store *fakeSessionStore
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.store = &fakeSessionStore{}
}

func (s *SessionServiceTestSuite) localService() *application.SessionService {
	return application.NewSessionService(s.store, domain.AuthModeLocal, "", nil)
}

func (s *SessionServiceTestSuite) hostedService(key string) *application.SessionService {
	return application.NewSessionService(s.store, domain.AuthModeHosted, key, nil)
}

func (s *SessionServiceTestSuite) TestLoginRejectsEmptyToken() {
	svc := s.localService()

	gate, err := svc.Login(context.Background(), "")
	s.Require().ErrorIs(err, domain.ErrTokenRequired)
	s.Equal(application.GateLogin, gate)
	s.Equal(0, s.store.setCalls, "store must not be touched")
}

func (s *SessionServiceTestSuite) TestLoginRejectsWhitespaceToken() {
	svc := s.localService()

	gate, err := svc.Login(context.Background(), "   \t  ")
	s.Require().ErrorIs(err, domain.ErrTokenRequired)
	s.Equal(application.GateLogin, gate)
	s.Equal(0, s.store.setCalls, "store must not be touched")
}

func (s *SessionServiceTestSuite) TestLoginStoresTrimmedToken() {
	svc := s.localService()

	gate, err := svc.Login(context.Background(), "  abc123  ")
	s.Require().NoError(err)
	s.Equal(application.GateDashboard, gate)
	s.Equal("abc123", s.store.token)

	token, err := svc.Token(context.Background())
	s.Require().NoError(err)
	s.Equal("abc123", token)
}

func (s *SessionServiceTestSuite) TestLoginErrorMessage() {
	svc := s.localService()

	_, err := svc.Login(context.Background(), "")
	s.Require().Error(err)
	s.Equal("token is required", err.Error())
}

func (s *SessionServiceTestSuite) TestLogoutClearsToken() {
	svc := s.localService()

	_, err := svc.Login(context.Background(), "abc123")
	s.Require().NoError(err)

	s.Require().NoError(svc.Logout(context.Background()))
	token, err := svc.Token(context.Background())
	s.Require().NoError(err)
	s.Equal("", token)
}

func (s *SessionServiceTestSuite) TestGateLocalWithoutToken() {
	svc := s.localService()

	gate, err := svc.Gate(context.Background())
	s.Require().NoError(err)
	s.Equal(application.GateLogin, gate)
}

func (s *SessionServiceTestSuite) TestGateLocalWithToken() {
	s.store.token = "abc123"
	svc := s.localService()

	gate, err := svc.Gate(context.Background())
	s.Require().NoError(err)
	s.Equal(application.GateDashboard, gate)
}

func (s *SessionServiceTestSuite) TestGateHostedWithPlausibleKey() {
	svc := s.hostedService("pk_test_Zm9vLmJhci5iYXo")

	gate, err := svc.Gate(context.Background())
	s.Require().NoError(err)
	s.Equal(application.GateHosted, gate)
}

func (s *SessionServiceTestSuite) TestGateHostedWithImplausibleKeyDegrades() {
	svc := s.hostedService("")

	gate, err := svc.Gate(context.Background())
	s.Require().NoError(err, "degraded mode must not surface an error")
	s.Equal(application.GateDegraded, gate)
}

func (s *SessionServiceTestSuite) TestPlausiblePublishableKey() {
	cases := []struct {
		name string
		key  string
		want bool
	}{
		{"test key", "pk_test_Zm9vLmJhci5iYXo", true},
		{"live key", "pk_live_Zm9vLmJhci5iYXo", true},
		{"padded payload", "pk_test_Zm9vYg==", true},
		{"empty", "", false},
		{"wrong prefix", "sk_test_Zm9vLmJhci5iYXo", false},
		{"prefix only", "pk_test_", false},
		{"invalid payload", "pk_test_???", false},
		{"surrounding whitespace", "  pk_live_Zm9vLmJhci5iYXo  ", true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, application.PlausiblePublishableKey(tc.key))
		})
	}
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
