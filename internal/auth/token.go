package auth

import (
	"fmt"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig is the immutable signing configuration, built once from
// config.Config at startup.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// Claims is the token payload. "id" carries the numeric subject so tokens
// issued by earlier deployments keep verifying.
type Claims struct {
	SubjectID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// TTL is the default lifetime used by callers that don't pick their own.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subjectID that expires after ttl.
func (s *TokenService) Issue(subjectID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, then expiry, and returns the subject id.
// Every failure wraps domain.ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (int64, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if claims.SubjectID <= 0 {
		return 0, fmt.Errorf("%w: missing subject id", domain.ErrTokenInvalid)
	}
	return claims.SubjectID, nil
}
