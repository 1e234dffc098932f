package middleware

import (
	"net/http"
	"strings"

	"service_station/internal/domain/entities"
	"service_station/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActorKey is the gin context key holding the authenticated entities.Actor.
const ActorKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session token", http.StatusUnauthorized)

// ISessionValidator resolves a bearer token into the calling actor.
type ISessionValidator interface {
	Validate(token string) (entities.Actor, error)
}

type AuthMiddleware struct {
	sessions ISessionValidator
	log      *zap.Logger
}

func NewAuthMiddleware(sessions ISessionValidator, log *zap.Logger) *AuthMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthMiddleware{sessions: sessions, log: log}
}

// Authenticate requires an "Authorization: Bearer <token>" header.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.log.Warn("[http][auth] missing or malformed authorization header", zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor, err := m.sessions.Validate(parts[1])
		if err != nil {
			m.log.Warn("[http][auth] token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by Authenticate.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
