package middleware

import (
	"context"
	"net/http"
	"strings"

	"basegraph.app/surveys/common/logger"
	"github.com/gin-gonic/gin"
)

// ActorHeader carries the id of the user on whose behalf a request is made.
// Authentication happens upstream; the engine only records who acted.
const ActorHeader = "X-Actor"

type contextKey string

const actorContextKey contextKey = "actor"

// RequireActor rejects requests without an actor header.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + ActorHeader + " header",
				"code":  "unauthenticated",
			})
			return
		}

		c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// WithActor attaches actor to ctx for handlers and log records.
func WithActor(ctx context.Context, actor string) context.Context {
	ctx = context.WithValue(ctx, actorContextKey, actor)
	return logger.WithLogFields(ctx, logger.LogFields{Actor: &actor})
}

func GetActor(ctx context.Context) string {
	actor, _ := ctx.Value(actorContextKey).(string)
	return actor
}
