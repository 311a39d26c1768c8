package router

import (
	"basegraph.app/surveys/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func TemplateRouter(rg *gin.RouterGroup, h *handler.TemplateHandler, runs *handler.RunHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/status", h.UpdateStatus)
	rg.POST("/:id/clone", h.Clone)

	rg.GET("/:id/questions", h.Questions)
	rg.POST("/:id/questions", h.AddQuestion)
	rg.PUT("/:id/questions/:questionID", h.UpdateQuestion)
	rg.DELETE("/:id/questions/:questionID", h.RemoveQuestion)

	rg.GET("/:id/runs", runs.ListByTemplate)
}
