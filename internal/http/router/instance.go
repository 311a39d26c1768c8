package router

import (
	"basegraph.app/surveys/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func InstanceRouter(rg *gin.RouterGroup, h *handler.InstanceHandler) {
	rg.GET("/:id", h.Get)
	rg.GET("/:id/recipients", h.Recipients)
	rg.GET("/:id/responses", h.Responses)
	rg.PUT("/:id/responses", h.SubmitResponses)
	rg.POST("/:id/approve", h.Approve)
	rg.POST("/:id/reject", h.Reject)
	rg.POST("/:id/withdraw", h.Withdraw)
	rg.POST("/:id/reissue", h.Reissue)
}
