package application

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

// AuthGate is what the composition root should render. It is a pure
// function of the configured mode, the provider key, and the stored token;
// there are no intermediate states.
type AuthGate int

const (
	// GateLogin renders the login view: local mode with no stored token.
	GateLogin AuthGate = iota
	// GateDashboard renders the dashboard with the stored shared token.
	GateDashboard
	// GateHosted renders the dashboard wrapped in the hosted provider
	// context.
	GateHosted
	// GateDegraded renders the dashboard with no authentication at all:
	// hosted mode with an implausible provider key.
	GateDegraded
)

// SessionService owns the single token slot. All reads and writes of the
// stored credential go through it; nothing else touches the store.
type SessionService struct {
	repo        domain.SessionRepository
	mode        domain.AuthMode
	providerKey string
	logger      *slog.Logger
}

func NewSessionService(repo domain.SessionRepository, mode domain.AuthMode, providerKey string, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		repo:        repo,
		mode:        mode,
		providerKey: strings.TrimSpace(providerKey),
		logger:      logger,
	}
}

func (s *SessionService) Mode() domain.AuthMode {
	return s.mode
}

// Token returns the stored shared token, or "" when absent. The token is
// never verified against the backend; a stale value surfaces as 401s on
// API calls.
func (s *SessionService) Token(ctx context.Context) (string, error) {
	token, err := s.repo.GetToken(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// Login persists the trimmed token and returns the gate the UI should
// transition to. Empty or whitespace-only input is rejected without
// touching the store.
func (s *SessionService) Login(ctx context.Context, raw string) (AuthGate, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return GateLogin, domain.ErrTokenRequired
	}
	if err := s.repo.SetToken(ctx, token); err != nil {
		return GateLogin, err
	}
	return GateDashboard, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.repo.ClearToken(ctx)
}

// Gate evaluates the auth decision procedure:
//
//  1. Local mode: no token -> login view; token -> dashboard.
//  2. Hosted mode: plausible publishable key -> hosted context;
//     otherwise degraded, unauthenticated rendering.
func (s *SessionService) Gate(ctx context.Context) (AuthGate, error) {
	if s.mode == domain.AuthModeLocal {
		token, err := s.Token(ctx)
		if err != nil {
			return GateLogin, err
		}
		if token == "" {
			return GateLogin, nil
		}
		return GateDashboard, nil
	}

	if PlausiblePublishableKey(s.providerKey) {
		return GateHosted, nil
	}
	// The original dashboard degrades silently here; keep the fail-open
	// behavior but leave a trace in the log.
	s.logger.Warn("provider key is not a plausible publishable key, running unauthenticated",
		"auth_mode", string(s.mode))
	return GateDegraded, nil
}

// PlausiblePublishableKey reports whether the key looks like a hosted
// provider publishable key: pk_test_ or pk_live_ followed by a base64
// payload. It is a shape check only, not a verification.
func PlausiblePublishableKey(key string) bool {
	key = strings.TrimSpace(key)
	var payload string
	switch {
	case strings.HasPrefix(key, "pk_test_"):
		payload = strings.TrimPrefix(key, "pk_test_")
	case strings.HasPrefix(key, "pk_live_"):
		payload = strings.TrimPrefix(key, "pk_live_")
	default:
		return false
	}
	if payload == "" {
		return false
	}
	_, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	return err == nil
}
