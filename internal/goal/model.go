package goal

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"go-moment/internal/widget"
)

// GoalRecord is the persisted form of one tracked goal. Kind and
// ProgressKind are immutable after creation; only the progress fields
// matching ProgressKind are meaningful.
type GoalRecord struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Title string `gorm:"size:128;not null" json:"title"`
	Kind  string `gorm:"size:16;not null" json:"kind"`

	ProgressKind    string         `gorm:"size:16;not null" json:"progressKind"`
	Completed       bool           `gorm:"default:false" json:"completed"`
	PercentComplete float64        `json:"percentComplete"`
	Milestones      datatypes.JSON `gorm:"default:'[]'" json:"milestones"`
	CurrentValue    float64        `json:"currentValue"`
	TargetValue     float64        `json:"targetValue"`
	DailyTarget     float64        `json:"dailyTarget"`
	Unit            string         `gorm:"size:32" json:"unit"`

	CurrentStreak    int            `json:"currentStreak"`
	LongestStreak    int            `json:"longestStreak"`
	TodayCompletions datatypes.JSON `gorm:"default:'[]'" json:"todayCompletions"`

	Deadline        *time.Time     `json:"deadline,omitempty"`
	LastCompletedAt *time.Time     `json:"lastCompletedAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// ToWidget converts the stored record into the core's read-only goal
// value. Stored rows are never mutated here: stale today-completions
// stay on disk and are filtered by the widget core at read time.
func (r *GoalRecord) ToWidget() widget.Goal {
	g := widget.Goal{
		ID:              r.ID,
		Title:           r.Title,
		Kind:            widget.GoalKind(r.Kind),
		Progress:        widget.ProgressKind(r.ProgressKind),
		Completed:       r.Completed,
		PercentComplete: r.PercentComplete,
		CurrentValue:    r.CurrentValue,
		TargetValue:     r.TargetValue,
		DailyTarget:     r.DailyTarget,
		Unit:            r.Unit,
		CreatedAt:       r.CreatedAt,
		Deadline:        r.Deadline,
		LastCompletedAt: r.LastCompletedAt,
		CurrentStreak:   r.CurrentStreak,
		LongestStreak:   r.LongestStreak,
	}
	if len(r.Milestones) > 0 {
		if err := json.Unmarshal(r.Milestones, &g.Milestones); err != nil {
			log.Printf("[GoalStore] Goal %s has unreadable milestones, treating as empty: %v", r.ID, err)
		}
	}
	if len(r.TodayCompletions) > 0 {
		if err := json.Unmarshal(r.TodayCompletions, &g.TodayCompletions); err != nil {
			log.Printf("[GoalStore] Goal %s has unreadable completions, treating as empty: %v", r.ID, err)
		}
	}
	return g
}

// setMilestones re-encodes the milestone list onto the record.
func (r *GoalRecord) setMilestones(ms []widget.Milestone) error {
	raw, err := json.Marshal(ms)
	if err != nil {
		return err
	}
	r.Milestones = datatypes.JSON(raw)
	return nil
}

// setTodayCompletions re-encodes the completion timestamps onto the record.
func (r *GoalRecord) setTodayCompletions(ts []time.Time) error {
	raw, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	r.TodayCompletions = datatypes.JSON(raw)
	return nil
}
