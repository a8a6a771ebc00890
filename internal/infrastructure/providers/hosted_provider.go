package providers

import (
	"context"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

// HostedProvider wraps the dashboard in a hosted identity provider's
// context. The provider itself is a black box: it is configured by a
// publishable key, and the session token it issued is handed to us by the
// environment rather than negotiated here.
type HostedProvider struct {
	publishableKey string
	sessionToken   string
}

func NewHostedProvider(publishableKey, sessionToken string) *HostedProvider {
	return &HostedProvider{
		publishableKey: publishableKey,
		sessionToken:   sessionToken,
	}
}

func (*HostedProvider) Type() string {
	return string(domain.AuthModeHosted)
}

func (*HostedProvider) Name() string {
	return "Hosted identity"
}

func (p *HostedProvider) PublishableKey() string {
	return p.publishableKey
}

func (p *HostedProvider) Token(_ context.Context) (string, error) {
	return p.sessionToken, nil
}
