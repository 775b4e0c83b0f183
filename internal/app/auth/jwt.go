package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/config"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

// Claims is the wire payload: {sub, id, exp, iat, jti}, HS256 signed.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id,omitempty"`
}

// Tokens issues and verifies bearer tokens. It is immutable after
// construction and safe for concurrent use; verification is a pure function
// of the token, the secret and the clock.
type Tokens struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokens(cfg *config.Config) (*Tokens, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt: signing secret is not configured")
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Tokens{secret: []byte(cfg.JWTSecret), defaultTTL: ttl}, nil
}

// Issue signs a token for the given subject and user id with the default TTL.
func (t *Tokens) Issue(subject string, id int64) (token string, exp time.Time, jti string, err error) {
	return t.IssueWithTTL(subject, id, t.defaultTTL)
}

// IssueWithTTL signs a token expiring exactly ttl from now. The ttl is taken
// literally: zero or negative produces an already-expired token.
func (t *Tokens) IssueWithTTL(subject string, id int64, ttl time.Duration) (token string, exp time.Time, jti string, err error) {
	jti = uuid.NewString()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
		UserID: id,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, "", apperrors.WrapInternal(err, "sign token")
	}
	return signed, claims.ExpiresAt.Time, jti, nil
}

// Resolve verifies raw and converts it into an Identity. Signature or expiry
// failures yield ErrInvalidToken; a verified token missing the sub or id
// claim yields ErrIncompleteIdentity.
func (t *Tokens) Resolve(raw string) (model.Identity, error) {
	claims, err := t.parse(raw)
	if err != nil {
		return model.Identity{}, err
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return model.Identity{}, apperrors.ErrIncompleteIdentity
	}
	return model.Identity{Subject: claims.Subject, ID: claims.UserID}, nil
}

func (t *Tokens) parse(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, apperrors.ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithIssuedAt(), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
