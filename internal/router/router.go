// Package router wires handlers and middleware into the gin engine.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/ekazakov/pr-reviewer-service/internal/handler"
	"github.com/ekazakov/pr-reviewer-service/internal/metrics"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	teamHandler *handler.TeamHandler,
	userHandler *handler.UserHandler,
	prHandler *handler.PRHandler,
	statsHandler *handler.StatsHandler,
	logger *slog.Logger,
	m *metrics.Metrics,
) *gin.Engine {
	r := gin.New()

	r.Use(sloggin.New(logger))
	r.Use(gin.Recovery())
	r.Use(m.Middleware())

	// Team endpoints. /team/create is a documented alias of /team/add,
	// kept for clients that still use the old path.
	r.POST("/team/add", teamHandler.AddTeam)
	r.POST("/team/create", teamHandler.AddTeam)
	r.GET("/team/get", teamHandler.GetTeam)
	r.POST("/team/deactivate", teamHandler.DeactivateTeam)

	// User endpoints
	r.POST("/users/setIsActive", userHandler.SetIsActive)
	r.GET("/users/getReview", userHandler.GetReview)

	// Pull Request endpoints
	r.POST("/pullRequest/create", prHandler.CreatePR)
	r.POST("/pullRequest/merge", prHandler.MergePR)
	r.POST("/pullRequest/reassign", prHandler.ReassignPR)

	// Observability
	r.GET("/stats", statsHandler.GetStatistics)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}
