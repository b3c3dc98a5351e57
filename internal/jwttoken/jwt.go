// Package jwttoken mints and validates the bearer tokens used by the
// directory administration endpoints.
package jwttoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"roster/internal/platform/middleware"
	dErrors "roster/pkg/domain-errors"
)

// AdminTokenClaims represents the JWT claims for admin tokens.
type AdminTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
}

func NewService(signingKey, issuer, audience string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
	}
}

// GenerateAdminToken mints an HS256 token carrying the admin role for the
// given subject.
func (s *Service) GenerateAdminToken(subject string) (string, error) {
	if subject == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "subject cannot be empty")
	}

	now := time.Now()
	claims := AdminTokenClaims{
		Role: middleware.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, nil
}

// ValidateAdminToken verifies the signature, expiry, issuer and audience of
// a bearer token and returns its claims.
func (s *Service) ValidateAdminToken(tokenString string) (*middleware.AdminClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &AdminTokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*AdminTokenClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return &middleware.AdminClaims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}

var _ middleware.TokenValidator = (*Service)(nil)
