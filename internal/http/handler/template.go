package handler

import (
	"net/http"

	"basegraph.app/surveys/internal/http/dto"
	"basegraph.app/surveys/internal/service"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templates service.TemplateService
}

func NewTemplateHandler(templates service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tpl, err := h.templates.Create(c.Request.Context(), actor(c), req.ToDraft())
	if err != nil {
		respondError(c, err, "failed to create template")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTemplateResponse(tpl))
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": dto.ToTemplateResponses(templates)})
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	tpl, err := h.templates.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get template")
		return
	}
	c.JSON(http.StatusOK, dto.ToTemplateResponse(tpl))
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tpl, err := h.templates.Update(c.Request.Context(), actor(c), id, req.ToDraft())
	if err != nil {
		respondError(c, err, "failed to update template")
		return
	}
	c.JSON(http.StatusOK, dto.ToTemplateResponse(tpl))
}

func (h *TemplateHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.TemplateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tpl, err := h.templates.UpdateStatus(c.Request.Context(), actor(c), id, req.Status)
	if err != nil {
		respondError(c, err, "failed to change template status")
		return
	}
	c.JSON(http.StatusOK, dto.ToTemplateResponse(tpl))
}

func (h *TemplateHandler) Clone(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	tpl, err := h.templates.Clone(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err, "failed to clone template")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTemplateResponse(tpl))
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.templates.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err, "failed to delete template")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) Questions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}

	questions, err := h.templates.Questions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list questions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.ToQuestionResponses(questions)})
}

func (h *TemplateHandler) AddQuestion(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q, err := h.templates.AddQuestion(c.Request.Context(), actor(c), id, req.ToDraft())
	if err != nil {
		respondError(c, err, "failed to add question")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuestionResponse(q))
}

func (h *TemplateHandler) UpdateQuestion(c *gin.Context) {
	id, err := pathID(c, "questionID")
	if err != nil {
		respondBindError(c, err)
		return
	}
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q, err := h.templates.UpdateQuestion(c.Request.Context(), actor(c), id, req.ToDraft())
	if err != nil {
		respondError(c, err, "failed to update question")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuestionResponse(q))
}

func (h *TemplateHandler) RemoveQuestion(c *gin.Context) {
	id, err := pathID(c, "questionID")
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.templates.RemoveQuestion(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err, "failed to remove question")
		return
	}
	c.Status(http.StatusNoContent)
}
