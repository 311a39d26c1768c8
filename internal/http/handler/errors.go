package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"basegraph.app/surveys/internal/domain"
	"github.com/gin-gonic/gin"
)

var statusByKind = map[domain.Kind]int{
	domain.KindValidation:             http.StatusBadRequest,
	domain.KindNotFound:               http.StatusNotFound,
	domain.KindInvalidStateTransition: http.StatusUnprocessableEntity,
	domain.KindInvalidState:           http.StatusUnprocessableEntity,
	domain.KindConcurrentModification: http.StatusConflict,
	domain.KindConflict:               http.StatusConflict,
	domain.KindUpstreamResolution:     http.StatusBadGateway,
}

// respondError writes err as {"error", "code"}. Internal failures are logged
// and reported without detail.
func respondError(c *gin.Context, err error, msg string) {
	ctx := c.Request.Context()
	kind := domain.KindOf(err)

	status, ok := statusByKind[kind]
	if !ok {
		slog.ErrorContext(ctx, msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "code": domain.KindInternal.Code()})
		return
	}

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, msg, "error", err, "kind", kind)
		// Causes of upstream failures carry driver and resolver internals.
		var de *domain.Error
		if errors.As(err, &de) {
			detail = de.Summary()
		}
	} else {
		slog.WarnContext(ctx, msg, "error", err, "kind", kind)
	}
	c.JSON(status, gin.H{"error": detail, "code": kind.Code()})
}

// respondBindError reports a malformed request. Unknown enum values fail
// inside binding with model.ErrUnknownValue and land here too.
func respondBindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": domain.KindValidation.Code()})
}
