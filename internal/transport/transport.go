package transport

import (
	"github.com/akashsahu123/event-management/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(eventHandler *EventHandler) *gin.Engine {

	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	events := router.Group("/events")
	{
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.GetAllEvents)
		events.GET("/find", eventHandler.FindEvents)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
