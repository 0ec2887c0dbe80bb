package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-moment/internal/goal"
	"go-moment/internal/publish"
	"go-moment/internal/refresh"
)

// POST /actions
//
// Accepts the action record a rendering surface emits on tap, applies
// it to the goal store, then regenerates and publishes a fresh snapshot
// so the widget reflects the tap on its next draw.
func ActionHandler(repo *goal.Repository, worker *refresh.Worker) gin.HandlerFunc {
	mutator := goal.NewMutator(repo)
	return func(c *gin.Context) {
		var act goal.Action
		if err := c.ShouldBindJSON(&act); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid action record"}})
			return
		}
		rec, err := mutator.Apply(act)
		if err != nil {
			if errors.Is(err, goal.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		snap, err := worker.RunOnce(c.Request.Context())
		if err != nil {
			// The mutation itself succeeded; report the goal and let the
			// next refresh cycle pick up the snapshot.
			c.JSON(http.StatusOK, gin.H{"goal": rec})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goal": rec, "snapshot": snap})
	}
}

// GET /widget/snapshot
//
// Serves the last published snapshot; generates one on demand when
// nothing has been published yet (fresh install, cold redis).
func SnapshotHandler(pub *publish.Publisher, worker *refresh.Worker) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := pub.Latest(c.Request.Context())
		if err == nil && snap != nil {
			c.JSON(http.StatusOK, snap)
			return
		}
		fresh, genErr := worker.RunOnce(c.Request.Context())
		if genErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Snapshot unavailable"}})
			return
		}
		c.JSON(http.StatusOK, fresh)
	}
}
