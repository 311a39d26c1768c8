package handler

import (
	"net/http"

	"basegraph.app/surveys/internal/http/dto"
	"basegraph.app/surveys/internal/service"
	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	runs      service.RunService
	instances service.InstanceService
}

func NewRunHandler(runs service.RunService, instances service.InstanceService) *RunHandler {
	return &RunHandler{runs: runs, instances: instances}
}

func (h *RunHandler) Create(c *gin.Context) {
	var req dto.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondBindError(c, err)
		return
	}

	run, err := h.runs.Create(c.Request.Context(), actor(c), draft)
	if err != nil {
		respondError(c, err, "failed to create run")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRunResponse(run))
}

func (h *RunHandler) ListByTemplate(c *gin.Context) {
	templateID, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	runs, err := h.runs.ListByTemplate(c.Request.Context(), templateID)
	if err != nil {
		respondError(c, err, "failed to list runs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": dto.ToRunResponses(runs)})
}

func (h *RunHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	run, err := h.runs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get run")
		return
	}
	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *RunHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		respondBindError(c, err)
		return
	}

	run, err := h.runs.Update(c.Request.Context(), actor(c), id, draft)
	if err != nil {
		respondError(c, err, "failed to update run")
		return
	}
	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *RunHandler) Issue(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	run, err := h.runs.Issue(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, "failed to issue run")
		return
	}
	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

func (h *RunHandler) Close(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	run, err := h.runs.Close(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, "failed to close run")
		return
	}
	c.JSON(http.StatusOK, dto.ToRunResponse(run))
}

// Recipients previews who the run would be sent to.
func (h *RunHandler) Recipients(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	candidates, err := h.runs.GenerateRecipients(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to generate recipients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": dto.ToCandidateResponses(candidates)})
}

func (h *RunHandler) Reconcile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.instances.Reconcile(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, "failed to reconcile run")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(result))
}

func (h *RunHandler) Instances(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	latestOnly := c.DefaultQuery("latest", "true") != "false"

	instances, err := h.instances.ListForRun(c.Request.Context(), id, latestOnly)
	if err != nil {
		respondError(c, err, "failed to list instances")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instances": dto.ToInstanceResponses(instances)})
}

func (h *RunHandler) Stats(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	counts, err := h.runs.CompletionStats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to compute completion stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompletionStatsResponse(counts))
}
