// Package jwks verifies RS256 JWTs against a remote JWKS endpoint.
//
// Keys are fetched once and cached; the set is refreshed in the background
// of a verification when it goes stale or when a token references an
// unknown key ID (rate-limited so a flood of bad tokens cannot hammer the
// provider). Only RS256 is accepted; tokens signed with symmetric
// algorithms are rejected before any key lookup.
package jwks

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnknownKey       = errors.New("token signed with unknown key")
	ErrFetchFailed      = errors.New("failed to fetch key set")
)

// minRefreshInterval bounds how often unknown key IDs may trigger a refetch.
const minRefreshInterval = 30 * time.Second

// Claims are the validated claims of a verified token
type Claims struct {
	jwt.RegisteredClaims
}

// Config holds verifier settings
type Config struct {
	JWKSURL  string
	Issuer   string        // expected iss claim, with trailing slash
	Audience string        // expected aud claim
	Refresh  time.Duration // how long a fetched key set stays fresh
	// HTTPClient overrides the client used for JWKS fetches
	HTTPClient *http.Client
}

// Verifier validates tokens against a cached JWKS key set
type Verifier struct {
	config     Config
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewVerifier creates a verifier. No keys are fetched until the first
// verification.
func NewVerifier(cfg Config) *Verifier {
	if cfg.Refresh <= 0 {
		cfg.Refresh = 15 * time.Minute
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Verifier{
		config:     cfg,
		httpClient: client,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// Verify validates the raw token's signature, issuer, audience, and expiry,
// returning its claims.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	claims := &Claims{}

	keyfunc := func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKey
		}
		return v.key(ctx, kid)
	}

	_, err := jwt.ParseWithClaims(rawToken, claims, keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.config.Issuer),
		jwt.WithAudience(v.config.Audience),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, ErrUnknownKey):
			return nil, ErrUnknownKey
		case errors.Is(err, ErrFetchFailed):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	return claims, nil
}

// Subject verifies the token and returns its sub claim
func (v *Verifier) Subject(ctx context.Context, rawToken string) (string, error) {
	claims, err := v.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// key returns the cached public key for kid, refreshing the key set when
// it is stale or the kid is unknown.
func (v *Verifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	stale := time.Since(v.fetchedAt) > v.config.Refresh
	v.mu.RUnlock()

	if ok && !stale {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		// Keep serving a known key if the refetch fails
		if ok {
			return key, nil
		}
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownKey
	}
	return key, nil
}

// refresh refetches the key set, no more than once per minRefreshInterval
func (v *Verifier) refresh(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if time.Since(v.fetchedAt) < minRefreshInterval {
		return nil
	}

	keys, err := v.fetch(ctx)
	if err != nil {
		return err
	}

	v.keys = keys
	v.fetchedAt = time.Now()
	return nil
}

type jwksDocument struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// fetch downloads and parses the JWKS document
func (v *Verifier) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.config.JWKSURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no usable RSA keys", ErrFetchFailed)
	}
	return keys, nil
}

// parseRSAKey converts a JWK's n/e components into an RSA public key
func parseRSAKey(k jwkKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 0 {
		return nil, errors.New("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
