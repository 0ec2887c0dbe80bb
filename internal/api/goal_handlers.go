package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-moment/internal/goal"
	"go-moment/internal/widget"
)

// CreateGoalRequest carries the mutable creation fields. Kind and
// progress kind are fixed at creation and cannot be changed later.
type CreateGoalRequest struct {
	Title        string             `json:"title"`
	Kind         string             `json:"kind"`
	ProgressKind string             `json:"progressKind"`
	TargetValue  float64            `json:"targetValue"`
	DailyTarget  float64            `json:"dailyTarget"`
	Unit         string             `json:"unit"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
	Milestones   []widget.Milestone `json:"milestones,omitempty"`
}

// GET /goals
func ListGoalsHandler(repo *goal.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := repo.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

// POST /goals
func CreateGoalHandler(repo *goal.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing title"}})
			return
		}
		rec := goal.GoalRecord{
			Title:        req.Title,
			Kind:         req.Kind,
			ProgressKind: req.ProgressKind,
			TargetValue:  req.TargetValue,
			DailyTarget:  req.DailyTarget,
			Unit:         req.Unit,
			Deadline:     req.Deadline,
		}
		if len(req.Milestones) > 0 {
			raw, err := json.Marshal(req.Milestones)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid milestones"}})
				return
			}
			rec.Milestones = raw
		}
		if err := repo.Create(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// GET /goals/:id
func GetGoalHandler(repo *goal.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := repo.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, goal.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Lookup error"}})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title,omitempty"`
	TargetValue *float64   `json:"targetValue,omitempty"`
	DailyTarget *float64   `json:"dailyTarget,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// PUT /goals/:id
func UpdateGoalHandler(repo *goal.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		rec, err := repo.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, goal.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Lookup error"}})
			return
		}
		if req.Title != nil {
			rec.Title = *req.Title
		}
		if req.TargetValue != nil {
			rec.TargetValue = *req.TargetValue
		}
		if req.DailyTarget != nil {
			rec.DailyTarget = *req.DailyTarget
		}
		if req.Unit != nil {
			rec.Unit = *req.Unit
		}
		if req.Deadline != nil {
			rec.Deadline = req.Deadline
		}
		if err := repo.Save(rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// DELETE /goals/:id
func DeleteGoalHandler(repo *goal.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, goal.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Delete error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
	}
}
