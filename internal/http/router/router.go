package router

import (
	"context"

	"basegraph.app/surveys/internal/http/handler"
	"basegraph.app/surveys/internal/http/middleware"
	"basegraph.app/surveys/internal/service"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func SetupRoutes(router *gin.Engine, services *service.Services, db Pinger) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(c.Request.Context()); err != nil {
				c.JSON(503, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireActor())
	{
		templateHandler := handler.NewTemplateHandler(services.Templates())
		runHandler := handler.NewRunHandler(services.Runs(), services.Instances())
		TemplateRouter(v1.Group("/templates"), templateHandler, runHandler)
		RunRouter(v1.Group("/runs"), runHandler)

		instanceHandler := handler.NewInstanceHandler(services.Instances())
		InstanceRouter(v1.Group("/instances"), instanceHandler)
		v1.GET("/people/:personID/instances", instanceHandler.ListForPerson)

		changeLogHandler := handler.NewChangeLogHandler(services.ChangeLogs())
		v1.GET("/change-log/:kind/:id", changeLogHandler.History)
	}
}
