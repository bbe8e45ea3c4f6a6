package domain

// TokenState captures the one-directional lifecycle of an API token.
// Active -> Revoked is the only transition; it is enforced at the store
// layer, never reversed.
type TokenState int

const (
	TokenActive TokenState = iota
	TokenRevoked
)

// ApiToken models a stored bearer credential. Value holds the opaque
// token itself; it is returned to the caller exactly once, at issuance,
// and omitted from listings afterwards.
type ApiToken struct {
	ID         string
	UserID     string
	Value      string
	Label      string
	CreatedAt  int64  // unix seconds
	LastUsedAt *int64 // unix seconds, nil until first resolution
	State      TokenState
}

func (t ApiToken) Revoked() bool { return t.State == TokenRevoked }

// SessionLabel marks tokens minted by the login flow, as opposed to
// tokens created explicitly for clients.
const SessionLabel = "session"
