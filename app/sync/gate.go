package sync

import (
	"crypto/subtle"
)

// Gate validates the shared sync secret. Every sync entry point checks it
// independently, so calling an adapter directly cannot bypass authorization.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Check succeeds only when the caller-supplied key exactly matches the
// configured secret. A missing server-side secret is a deployment defect
// and is reported distinctly from an invalid key.
func (g *Gate) Check(key string) error {
	if g.secret == "" {
		return &ConfigError{Message: "sync secret not configured"}
	}

	if subtle.ConstantTimeCompare([]byte(key), []byte(g.secret)) != 1 {
		return &UnauthorizedError{}
	}

	return nil
}
