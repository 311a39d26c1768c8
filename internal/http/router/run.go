package router

import (
	"basegraph.app/surveys/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func RunRouter(rg *gin.RouterGroup, h *handler.RunHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/issue", h.Issue)
	rg.POST("/:id/close", h.Close)
	rg.GET("/:id/recipients", h.Recipients)
	rg.POST("/:id/reconcile", h.Reconcile)
	rg.GET("/:id/instances", h.Instances)
	rg.GET("/:id/stats", h.Stats)
}
