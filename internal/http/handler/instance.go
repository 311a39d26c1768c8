package handler

import (
	"context"
	"net/http"

	"basegraph.app/surveys/internal/http/dto"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
	"github.com/gin-gonic/gin"
)

type InstanceHandler struct {
	instances service.InstanceService
}

func NewInstanceHandler(instances service.InstanceService) *InstanceHandler {
	return &InstanceHandler{instances: instances}
}

func (h *InstanceHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	inst, err := h.instances.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get instance")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstanceResponse(inst))
}

func (h *InstanceHandler) ListForPerson(c *gin.Context) {
	personID, err := pathID(c, "personID")
	if err != nil {
		respondBindError(c, err)
		return
	}

	instances, err := h.instances.ListForRecipient(c.Request.Context(), personID)
	if err != nil {
		respondError(c, err, "failed to list instances")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instances": dto.ToInstanceResponses(instances)})
}

func (h *InstanceHandler) Recipients(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	recipients, err := h.instances.Recipients(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list recipients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": dto.ToRecipientResponses(recipients)})
}

func (h *InstanceHandler) Responses(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	responses, err := h.instances.Responses(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list responses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": dto.ToResponseResponses(responses)})
}

func (h *InstanceHandler) SubmitResponses(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.SubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	inst, err := h.instances.SubmitResponse(c.Request.Context(), actor(c), id, req.ToInputs(), req.Final)
	if err != nil {
		respondError(c, err, "failed to save responses")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstanceResponse(inst))
}

func (h *InstanceHandler) Approve(c *gin.Context) {
	h.transition(c, "failed to approve instance", h.instances.Approve)
}

func (h *InstanceHandler) Withdraw(c *gin.Context) {
	h.transition(c, "failed to withdraw instance", h.instances.Withdraw)
}

func (h *InstanceHandler) Reissue(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	inst, err := h.instances.Reissue(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, "failed to reissue instance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInstanceResponse(inst))
}

func (h *InstanceHandler) Reject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	inst, err := h.instances.Reject(c.Request.Context(), actor(c), id, req.Reason)
	if err != nil {
		respondError(c, err, "failed to reject instance")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstanceResponse(inst))
}

type instanceTransition func(ctx context.Context, actor string, id int64) (*model.SurveyInstance, error)

func (h *InstanceHandler) transition(c *gin.Context, msg string, fn instanceTransition) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	inst, err := fn(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, msg)
		return
	}
	c.JSON(http.StatusOK, dto.ToInstanceResponse(inst))
}
