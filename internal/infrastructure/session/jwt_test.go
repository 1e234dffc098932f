package session

import (
	"errors"
	"testing"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTValidator(t *testing.T) {
	v := NewJWTValidator("test-secret")
	actor := entities.Actor{ID: 3, Role: entities.RoleDiagnostician}

	t.Run("round trip", func(t *testing.T) {
		token, err := v.Issue(actor, time.Minute)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		got, err := v.Validate(token)
		if err != nil {
			t.Fatalf("validate token: %v", err)
		}
		if got != actor {
			t.Fatalf("expected %+v, got %+v", actor, got)
		}
	})

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "empty", token: func(*testing.T) string { return "  " }},
		{name: "garbage", token: func(*testing.T) string { return "not-a-jwt" }},
		{name: "wrong secret", token: func(t *testing.T) string {
			token, err := NewJWTValidator("other").Issue(actor, time.Minute)
			if err != nil {
				t.Fatalf("issue token: %v", err)
			}
			return token
		}},
		{name: "expired", token: func(t *testing.T) string {
			token, err := v.Issue(actor, -time.Minute)
			if err != nil {
				t.Fatalf("issue token: %v", err)
			}
			return token
		}},
		{name: "unknown role", token: func(t *testing.T) string {
			token, err := v.Issue(entities.Actor{ID: 3, Role: "janitor"}, time.Minute)
			if err != nil {
				t.Fatalf("issue token: %v", err)
			}
			return token
		}},
		{name: "none algorithm", token: func(t *testing.T) string {
			token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 3, Role: "technician"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
			if err != nil {
				t.Fatalf("sign token: %v", err)
			}
			return token
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.token(t))
			if !errors.Is(err, workflow.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
