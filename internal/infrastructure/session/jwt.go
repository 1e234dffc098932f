package session

import (
	"fmt"
	"strings"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the staff member behind a request.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTValidator turns bearer tokens into actors.
type JWTValidator struct {
	secret []byte
}

func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

// Validate fails with workflow.ErrUnauthorized for malformed, expired or
// foreign tokens and for unknown roles.
func (v *JWTValidator) Validate(token string) (entities.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Actor{}, fmt.Errorf("%w: missing token", workflow.ErrUnauthorized)
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %v", workflow.ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return entities.Actor{}, fmt.Errorf("%w: invalid token", workflow.ErrUnauthorized)
	}

	actor := entities.Actor{ID: claims.UserID, Role: entities.Role(claims.Role)}
	if actor.ID <= 0 || !actor.Role.Valid() {
		return entities.Actor{}, fmt.Errorf("%w: invalid claims", workflow.ErrUnauthorized)
	}
	return actor, nil
}

// Issue signs a token for actor. Used by the seed tool and tests.
func (v *JWTValidator) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: actor.ID,
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
