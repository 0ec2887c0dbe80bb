package goal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-moment/internal/widget"
)

// ErrNotFound is returned when a goal id does not resolve to a record.
var ErrNotFound = errors.New("goal not found")

// Repository persists goal records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the given gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates and stores a new goal, assigning a UUID.
func (r *Repository) Create(rec *GoalRecord) error {
	if rec.Title == "" {
		return errors.New("goal title must be set")
	}
	if rec.Kind != string(widget.KindDaily) && rec.Kind != string(widget.KindLongTerm) {
		return fmt.Errorf("unknown goal kind %q", rec.Kind)
	}
	switch widget.ProgressKind(rec.ProgressKind) {
	case widget.ProgressCompletion, widget.ProgressPercent,
		widget.ProgressMilestones, widget.ProgressNumeric:
	default:
		return fmt.Errorf("unknown progress kind %q", rec.ProgressKind)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if len(rec.Milestones) == 0 {
		rec.Milestones = []byte("[]")
	}
	if len(rec.TodayCompletions) == 0 {
		rec.TodayCompletions = []byte("[]")
	}
	return r.db.Create(rec).Error
}

// GetByID fetches one goal record.
func (r *Repository) GetByID(id string) (*GoalRecord, error) {
	var rec GoalRecord
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns all goal records in creation order. Order is stable so
// the widget core's first-encountered tie-breaking stays deterministic.
func (r *Repository) List() ([]GoalRecord, error) {
	var recs []GoalRecord
	if err := r.db.Order("created_at asc, id asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListWidgetGoals loads every goal converted to the widget core's
// input form, in the same stable order as List.
func (r *Repository) ListWidgetGoals() ([]widget.Goal, error) {
	recs, err := r.List()
	if err != nil {
		return nil, err
	}
	goals := make([]widget.Goal, 0, len(recs))
	for i := range recs {
		goals = append(goals, recs[i].ToWidget())
	}
	return goals, nil
}

// Save writes back a modified record.
func (r *Repository) Save(rec *GoalRecord) error {
	return r.db.Save(rec).Error
}

// Delete soft-deletes a goal.
func (r *Repository) Delete(id string) error {
	res := r.db.Delete(&GoalRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
