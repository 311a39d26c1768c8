package handler

import (
	"net/http"

	"basegraph.app/surveys/internal/http/dto"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
	"github.com/gin-gonic/gin"
)

type ChangeLogHandler struct {
	changeLogs service.ChangeLogService
}

func NewChangeLogHandler(changeLogs service.ChangeLogService) *ChangeLogHandler {
	return &ChangeLogHandler{changeLogs: changeLogs}
}

// History serves /change-log/:kind/:id.
func (h *ChangeLogHandler) History(c *gin.Context) {
	kind, err := model.ParseEntityKind(c.Param("kind"))
	if err != nil {
		respondBindError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		respondBindError(c, err)
		return
	}

	entries, err := h.changeLogs.History(c.Request.Context(), model.Ref(kind, id), int32(min(limit, 1000)))
	if err != nil {
		respondError(c, err, "failed to load change log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToChangeLogResponses(entries)})
}
