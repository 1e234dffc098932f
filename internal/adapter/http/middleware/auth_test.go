package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"service_station/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubSessions map[string]entities.Actor

func (s stubSessions) Validate(token string) (entities.Actor, error) {
	a, ok := s[token]
	if !ok {
		return entities.Actor{}, errors.New("unknown token")
	}
	return a, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(stubSessions{"good": {ID: 3, Role: entities.RolePartsClerk}}, nil)

	r := gin.New()
	r.Use(m.Authenticate())
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, actor)
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", want: http.StatusOK},
		{name: "scheme is case insensitive", header: "bearer good", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("expected request id abc, got %q", got)
	}
}
