package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/platform/config"
	"github.com/cabindev/sdnfutsal/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// googleOAuthService implements GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL builds the Google consent page URL with a fresh random state
// token.
func (s *googleOAuthService) AuthCodeURL(ctx context.Context) (string, string, error) {
	if s.cfg.GoogleClientID == "" {
		return "", "", errors.New("google client ID is not configured in the application")
	}

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return s.oauth2Config.AuthCodeURL(state), state, nil
}

// ExchangeCode exchanges an authorization code for tokens and validates the
// returned ID token against our client ID. The verified payload is the only
// identity source; the access token itself is discarded.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*portssvc.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response is missing the id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	info := &portssvc.GoogleUserInfo{
		ProviderUserID: payload.Subject,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if given, ok := payload.Claims["given_name"].(string); ok {
		info.FirstName = given
	}
	if family, ok := payload.Claims["family_name"].(string); ok {
		info.LastName = family
	}
	if info.FirstName == "" {
		if name, ok := payload.Claims["name"].(string); ok {
			parts := strings.SplitN(name, " ", 2)
			info.FirstName = parts[0]
			if len(parts) > 1 && info.LastName == "" {
				info.LastName = parts[1]
			}
		}
	}
	if picture, ok := payload.Claims["picture"].(string); ok && picture != "" {
		info.Picture = &picture
	}

	if info.Email == "" {
		return nil, errors.New("google ID token is missing the email claim")
	}

	return info, nil
}
