package providers

import (
	"context"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

// LocalProvider authenticates API calls with the shared token owned by the
// session service. It doubles as the api.TokenSource for local mode, so a
// token stored mid-session is picked up by the next request.
type LocalProvider struct {
	session *application.SessionService
}

func NewLocalProvider(session *application.SessionService) *LocalProvider {
	return &LocalProvider{session: session}
}

func (*LocalProvider) Type() string {
	return string(domain.AuthModeLocal)
}

func (*LocalProvider) Name() string {
	return "Shared token"
}

func (p *LocalProvider) Token(ctx context.Context) (string, error) {
	return p.session.Token(ctx)
}
