package services

import (
	"context"
	"time"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleUserInfo is the verified identity extracted from a Google ID token.
type GoogleUserInfo struct {
	ProviderUserID string
	Email          string
	FirstName      string
	LastName       string
	Picture        *string
}

// GoogleOAuthSvcFacade exchanges Google authorization codes for verified
// identities.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the Google consent page URL with a fresh random
	// state token. The caller stores the state and verifies it on callback.
	AuthCodeURL(ctx context.Context) (url string, state string, err error)

	// ExchangeCode exchanges an authorization code and validates the returned
	// ID token.
	ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error)
}
