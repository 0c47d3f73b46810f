package auth

import (
	"context"
	"crypto/subtle"

	"github.com/lionetto/portfolio-server/internal/model"
)

// Authorizer validates the shared admin credential that guards every
// mutating operation. There is no session or token issuance; callers
// re-supply the raw credential on each call.
type Authorizer interface {
	// Authorize returns nil when the credential matches the configured
	// secret, model.ErrUnauthorized otherwise.
	Authorize(ctx context.Context, credential string) error
}

type staticAuthorizer struct {
	secret []byte
}

// NewStatic returns an Authorizer over a single shared secret. The comparison
// is constant-time so the gate does not leak the secret through timing.
func NewStatic(secret string) Authorizer {
	return &staticAuthorizer{secret: []byte(secret)}
}

func (a *staticAuthorizer) Authorize(_ context.Context, credential string) error {
	if subtle.ConstantTimeCompare(a.secret, []byte(credential)) == 1 {
		return nil
	}
	return model.ErrUnauthorized
}
