package service

import (
	"fmt"
	"time"

	"scrollcoin-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTCapabilityService implements ports.CapabilityService using HS256 JWT.
// Tokens are normally issued by the upstream identity service with the same
// shared secret; Issue exists for operator tooling and tests.
type JWTCapabilityService struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewJWTCapabilityService creates a new capability verifier.
func NewJWTCapabilityService(secret string, issuer string, expiry time.Duration) *JWTCapabilityService {
	return &JWTCapabilityService{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
	}
}

// Issue creates a signed capability token for the given principal.
func (s *JWTCapabilityService) Issue(principalID uuid.UUID, scopes []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":    principalID.String(),
		"scopes": scopes,
		"iat":    now.Unix(),
		"exp":    expiresAt.Unix(),
		"iss":    s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing capability token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Verify parses and validates a capability token and checks that it carries
// the required scope.
func (s *JWTCapabilityService) Verify(tokenString string, requiredScope string) (*ports.Capability, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing capability token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid capability claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}

	principalID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid principal ID in token: %w", err)
	}

	rawScopes, _ := claims["scopes"].([]interface{})
	scopes := make([]string, 0, len(rawScopes))
	for _, s := range rawScopes {
		if str, ok := s.(string); ok {
			scopes = append(scopes, str)
		}
	}

	cap := &ports.Capability{
		PrincipalID: principalID,
		Scopes:      scopes,
	}
	if requiredScope != "" && !cap.Has(requiredScope) {
		return nil, fmt.Errorf("capability lacks required scope %q", requiredScope)
	}

	return cap, nil
}
