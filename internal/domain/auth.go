package domain

// AuthMode selects how the dashboard obtains its bearer token.
type AuthMode string

const (
	// AuthModeLocal authenticates every API call with a single shared
	// token stored locally.
	AuthModeLocal AuthMode = "local"
	// AuthModeHosted delegates authentication to a hosted identity
	// provider configured by a publishable key.
	AuthModeHosted AuthMode = "hosted"
)

func (m AuthMode) Valid() bool {
	return m == AuthModeLocal || m == AuthModeHosted
}

// Session is the single locally persisted credential slot.
type Session struct {
	Token string
}

// AuthProviderClient describes an authentication provider the dashboard
// can be composed with.
type AuthProviderClient interface {
	Type() string
	Name() string
}
