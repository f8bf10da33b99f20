package routes

import (
	"github.com/gin-gonic/gin"

	"pipecrm/internal/adapter/http/handlers"
)

const (
	PathDeals     = "/deals"
	PathAnalytics = "/analytics"
)

func addCRMRoutes(rg *gin.RouterGroup, pipelineHandler *handlers.PipelineHandler, analyticsHandler *handlers.AnalyticsHandler) {
	deals := rg.Group(PathDeals)
	{
		deals.POST("", pipelineHandler.CreateDeal)
		deals.GET("", pipelineHandler.ListDeals)
		deals.GET("/:id", pipelineHandler.GetDeal)
		deals.PATCH("/:id/stage", pipelineHandler.MoveStage)
		deals.GET("/:id/history", pipelineHandler.History)
		deals.GET("/:id/recommendations", analyticsHandler.Recommendations)
	}

	stats := rg.Group(PathAnalytics)
	{
		stats.GET("/dashboard", analyticsHandler.Dashboard)
		stats.GET("/pipeline", analyticsHandler.PipelineReport)
		stats.GET("/forecast", analyticsHandler.Forecast)
		stats.GET("/forecast/history", analyticsHandler.ForecastHistory)
		stats.GET("/forecast/snapshots", analyticsHandler.ForecastSnapshots)
		stats.POST("/forecast/snapshot", analyticsHandler.SnapshotForecasts)
		stats.GET("/trends", analyticsHandler.Trends)
		stats.GET("/team", analyticsHandler.TeamPerformance)
	}
}
