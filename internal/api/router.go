package api

import (
	"github.com/gin-gonic/gin"

	"go-moment/internal/config"
	"go-moment/internal/goal"
	"go-moment/internal/publish"
	"go-moment/internal/refresh"
)

func SetupRouter(cfg *config.Config, repo *goal.Repository, pub *publish.Publisher, worker *refresh.Worker) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/moment" or any custom path, always starts with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// --- Goal store ---
		group.GET("/goals", ListGoalsHandler(repo))
		group.POST("/goals", CreateGoalHandler(repo))
		group.GET("/goals/:id", GetGoalHandler(repo))
		group.PUT("/goals/:id", UpdateGoalHandler(repo))
		group.DELETE("/goals/:id", DeleteGoalHandler(repo))

		// --- Widget surface ---
		group.POST("/actions", ActionHandler(repo, worker))
		group.GET("/widget/snapshot", SnapshotHandler(pub, worker))
		group.GET("/ws/snapshot", WSSnapshotHandler(pub))
	}
	return r
}
