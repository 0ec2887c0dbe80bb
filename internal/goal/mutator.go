package goal

import (
	"fmt"
	"log"
	"time"

	"go-moment/internal/widget"
)

// ActionLogProgress is the only action rendering surfaces can emit.
// A tap on the widget produces one of these records; the mutator is
// the handler that applies it to the store.
const ActionLogProgress = "log_progress"

// Action is the record a rendering surface sends back toward the store.
type Action struct {
	Action    string    `json:"action"`
	GoalID    string    `json:"goalId"`
	Timestamp time.Time `json:"timestamp"`
}

// Mutator applies action records to stored goals.
type Mutator struct {
	repo *Repository
}

// NewMutator creates a mutator over the given repository.
func NewMutator(repo *Repository) *Mutator {
	return &Mutator{repo: repo}
}

// Apply validates the action, advances the target goal's progress and
// streak bookkeeping, and persists the result.
func (m *Mutator) Apply(act Action) (*GoalRecord, error) {
	if act.Action != ActionLogProgress {
		return nil, fmt.Errorf("unknown action %q", act.Action)
	}
	if act.GoalID == "" {
		return nil, fmt.Errorf("action is missing a goal id")
	}
	ts := act.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	rec, err := m.repo.GetByID(act.GoalID)
	if err != nil {
		return nil, err
	}
	if err := applyLogProgress(rec, ts); err != nil {
		return nil, err
	}
	if err := m.repo.Save(rec); err != nil {
		return nil, err
	}
	log.Printf("[Mutator] Logged progress on goal %s (streak %d)", rec.ID, rec.CurrentStreak)
	return rec, nil
}

// applyLogProgress advances one progress step for the record's
// representation, then updates streaks and the completion instant.
func applyLogProgress(rec *GoalRecord, ts time.Time) error {
	daily := rec.Kind == string(widget.KindDaily)

	switch widget.ProgressKind(rec.ProgressKind) {
	case widget.ProgressCompletion:
		if daily {
			if err := appendCompletion(rec, ts); err != nil {
				return err
			}
		} else {
			rec.Completed = true
		}

	case widget.ProgressNumeric:
		if daily {
			// A value last touched on a previous day belongs to that
			// day; today starts from zero.
			if rec.LastCompletedAt == nil || !sameDay(ts, *rec.LastCompletedAt) {
				rec.CurrentValue = 0
			}
			if err := appendCompletion(rec, ts); err != nil {
				return err
			}
		}
		rec.CurrentValue++

	case widget.ProgressPercent:
		rec.PercentComplete += 10
		if rec.PercentComplete > 100 {
			rec.PercentComplete = 100
		}

	case widget.ProgressMilestones:
		var ms []widget.Milestone
		g := rec.ToWidget()
		ms = g.Milestones
		for i := range ms {
			if !ms[i].Completed {
				ms[i].Completed = true
				at := ts
				ms[i].CompletedAt = &at
				break
			}
		}
		if err := rec.setMilestones(ms); err != nil {
			return err
		}

	default:
		return fmt.Errorf("goal %s has unknown progress kind %q", rec.ID, rec.ProgressKind)
	}

	if daily {
		advanceStreak(rec, ts)
	}
	completed := ts
	rec.LastCompletedAt = &completed
	return nil
}

// advanceStreak continues a streak completed yesterday, leaves a streak
// already extended today untouched, and restarts everything else.
// CurrentStreak never exceeds LongestStreak because the latter is
// raised in the same step.
func advanceStreak(rec *GoalRecord, ts time.Time) {
	switch {
	case rec.LastCompletedAt == nil:
		rec.CurrentStreak = 1
	case sameDay(ts, *rec.LastCompletedAt):
		if rec.CurrentStreak == 0 {
			rec.CurrentStreak = 1
		}
	case sameDay(ts.AddDate(0, 0, -1), *rec.LastCompletedAt):
		rec.CurrentStreak++
	default:
		rec.CurrentStreak = 1
	}
	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}
}

// appendCompletion records today's completion event. Entries from past
// days stay in place; readers filter them out.
func appendCompletion(rec *GoalRecord, ts time.Time) error {
	g := rec.ToWidget()
	return rec.setTodayCompletions(append(g.TodayCompletions, ts))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
