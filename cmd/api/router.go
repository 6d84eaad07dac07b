package main

import (
	"net/http"
	"time"

	"inventory-service/internal/shared/middleware"
	"inventory-service/pkg/container"

	"github.com/gin-gonic/gin"
)

// SetupRouter mounts middleware, health probes and the inventory surface.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	registerHealth(router.Group(""), c)

	v1 := router.Group("/api/v1")
	registerHealth(v1, c)

	h := c.Handler

	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.ListItems)
		inventory.POST("", h.CreateItem)

		// Static paths must be declared alongside the :sku params; gin
		// resolves them with static-first priority.
		inventory.GET("/low_stock", h.LowStock)
		inventory.GET("/locations", h.Locations)
		inventory.GET("/aggregate", h.AggregateBySKU)
		inventory.POST("/transfer", h.Transfer)
		inventory.POST("/bulk_adjust", h.BulkAdjust)

		inventory.GET("/:sku", h.GetItem)
		inventory.PATCH("/:sku", h.UpdateItem)
		inventory.DELETE("/:sku", h.DeleteItem)

		inventory.POST("/:sku/receive", h.Receive)
		inventory.POST("/:sku/adjust", h.Adjust)
		inventory.POST("/:sku/reserve", h.Reserve)
		inventory.POST("/:sku/release", h.Release)
		inventory.POST("/:sku/commit", h.Commit)
		inventory.POST("/:sku/count", h.Count)

		inventory.GET("/:sku/movements", h.ItemMovements)
		inventory.GET("/:sku/availability", h.Availability)
	}

	movements := v1.Group("/stock_movements")
	{
		movements.GET("", h.ListMovements)
		movements.GET("/:id", h.GetMovement)
	}

	return router
}

// registerHealth adds the liveness/readiness probes. Ready requires the
// database to answer a ping; live and the bare health check do not touch it.
func registerHealth(group *gin.RouterGroup, c *container.Container) {
	group.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   c.Config.App.Name,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	group.GET("/health/live", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
	})

	group.GET("/health/ready", func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  "database unreachable",
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
