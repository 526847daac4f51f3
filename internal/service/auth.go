package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forgo/hangar/internal/model"
)

// IdentityConfig holds OIDC identity provider settings
type IdentityConfig struct {
	Domain       string // provider domain, e.g. tenant.us.auth0.com
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// IDTokenVerifier validates an ID token and returns its subject
type IDTokenVerifier interface {
	Subject(ctx context.Context, idToken string) (string, error)
}

// AuthService drives the authorization-code login flow against the identity
// provider and records users on first login.
type AuthService struct {
	config      IdentityConfig
	verifier    IDTokenVerifier
	userService *UserService
	httpClient  *http.Client
}

// NewAuthService creates a new auth service
func NewAuthService(cfg IdentityConfig, verifier IDTokenVerifier, userService *UserService) *AuthService {
	return &AuthService{
		config:      cfg,
		verifier:    verifier,
		userService: userService,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// LoginResult represents a completed login
type LoginResult struct {
	User    *model.User
	Subject string
	IDToken string
}

// TokenResponse represents the provider's token endpoint response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AuthCodeURL builds the provider authorize URL for the redirect that
// starts the login flow.
func (s *AuthService) AuthCodeURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", s.config.ClientID)
	params.Set("redirect_uri", s.config.CallbackURL)
	params.Set("scope", "openid profile email")
	params.Set("state", state)

	return fmt.Sprintf("https://%s/authorize?%s", s.config.Domain, params.Encode())
}

// Login exchanges the authorization code for tokens, validates the ID token,
// and records the user on first login.
func (s *AuthService) Login(ctx context.Context, code string) (*LoginResult, error) {
	tokenResp, err := s.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if tokenResp.IDToken == "" {
		return nil, ErrInvalidIDToken
	}

	sub, err := s.verifier.Subject(ctx, tokenResp.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	user, err := s.userService.EnsureUser(ctx, sub)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:    user,
		Subject: sub,
		IDToken: tokenResp.IDToken,
	}, nil
}

// LogoutURL builds the provider logout URL that also clears the provider
// session, returning the browser to returnTo afterwards.
func (s *AuthService) LogoutURL(returnTo string) string {
	params := url.Values{}
	params.Set("returnTo", returnTo)
	params.Set("client_id", s.config.ClientID)

	return fmt.Sprintf("https://%s/v2/logout?%s", s.config.Domain, params.Encode())
}

// exchangeCode exchanges an authorization code for tokens
func (s *AuthService) exchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", s.config.ClientID)
	data.Set("client_secret", s.config.ClientSecret)
	data.Set("redirect_uri", s.config.CallbackURL)

	endpoint := fmt.Sprintf("https://%s/oauth/token", s.config.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrProviderError, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}
