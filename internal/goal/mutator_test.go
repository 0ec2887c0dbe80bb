package goal

import (
	"testing"
	"time"

	"go-moment/internal/widget"
)

func at(day, hour int) time.Time {
	return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
}

func tptr(t time.Time) *time.Time { return &t }

func TestApplyLogProgress_DailyCompletion(t *testing.T) {
	rec := &GoalRecord{
		ID: "d1", Title: "Stretch", Kind: string(widget.KindDaily),
		ProgressKind: string(widget.ProgressCompletion),
	}
	ts := at(10, 9)
	if err := applyLogProgress(rec, ts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	g := rec.ToWidget()
	if len(g.TodayCompletions) != 1 || !g.TodayCompletions[0].Equal(ts) {
		t.Errorf("expected one completion at %v, got %v", ts, g.TodayCompletions)
	}
	if rec.LastCompletedAt == nil || !rec.LastCompletedAt.Equal(ts) {
		t.Errorf("lastCompletedAt not set: %v", rec.LastCompletedAt)
	}
	if rec.CurrentStreak != 1 || rec.LongestStreak != 1 {
		t.Errorf("expected fresh streak of 1, got %d/%d", rec.CurrentStreak, rec.LongestStreak)
	}
}

func TestApplyLogProgress_StreakContinuation(t *testing.T) {
	rec := &GoalRecord{
		ID: "d1", Kind: string(widget.KindDaily),
		ProgressKind:    string(widget.ProgressCompletion),
		CurrentStreak:   3, LongestStreak: 7,
		LastCompletedAt: tptr(at(9, 20)),
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.CurrentStreak != 4 {
		t.Errorf("yesterday's completion should continue the streak, got %d", rec.CurrentStreak)
	}
	if rec.LongestStreak != 7 {
		t.Errorf("longest streak must not shrink, got %d", rec.LongestStreak)
	}
}

func TestApplyLogProgress_StreakResetAfterGap(t *testing.T) {
	rec := &GoalRecord{
		ID: "d1", Kind: string(widget.KindDaily),
		ProgressKind:    string(widget.ProgressCompletion),
		CurrentStreak:   5, LongestStreak: 5,
		LastCompletedAt: tptr(at(5, 20)),
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.CurrentStreak != 1 {
		t.Errorf("a gap restarts the streak, got %d", rec.CurrentStreak)
	}
	if rec.LongestStreak != 5 {
		t.Errorf("longest streak preserved, got %d", rec.LongestStreak)
	}
}

func TestApplyLogProgress_SameDayDoesNotDoubleCount(t *testing.T) {
	rec := &GoalRecord{
		ID: "d1", Kind: string(widget.KindDaily),
		ProgressKind: string(widget.ProgressCompletion),
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := applyLogProgress(rec, at(10, 18)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.CurrentStreak != 1 {
		t.Errorf("two completions in one day still count as streak 1, got %d", rec.CurrentStreak)
	}
	if g := rec.ToWidget(); len(g.TodayCompletions) != 2 {
		t.Errorf("both completion events are recorded, got %d", len(g.TodayCompletions))
	}
}

func TestApplyLogProgress_DailyNumericResetsAcrossDays(t *testing.T) {
	rec := &GoalRecord{
		ID: "water", Kind: string(widget.KindDaily),
		ProgressKind: string(widget.ProgressNumeric),
		DailyTarget:  8, CurrentValue: 6,
		LastCompletedAt: tptr(at(9, 21)),
	}
	if err := applyLogProgress(rec, at(10, 7)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.CurrentValue != 1 {
		t.Errorf("yesterday's value belongs to yesterday; expected 1, got %f", rec.CurrentValue)
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.CurrentValue != 2 {
		t.Errorf("same-day increments accumulate; expected 2, got %f", rec.CurrentValue)
	}
}

func TestApplyLogProgress_PercentClamped(t *testing.T) {
	rec := &GoalRecord{
		ID: "lt", Kind: string(widget.KindLongTerm),
		ProgressKind:    string(widget.ProgressPercent),
		PercentComplete: 95,
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.PercentComplete != 100 {
		t.Errorf("expected clamp at 100, got %f", rec.PercentComplete)
	}
}

func TestApplyLogProgress_MilestonesCompleteInOrder(t *testing.T) {
	rec := &GoalRecord{
		ID: "lt", Kind: string(widget.KindLongTerm),
		ProgressKind: string(widget.ProgressMilestones),
	}
	if err := rec.setMilestones([]widget.Milestone{
		{Title: "outline"}, {Title: "draft"}, {Title: "publish"},
	}); err != nil {
		t.Fatalf("seed milestones: %v", err)
	}

	ts := at(10, 8)
	if err := applyLogProgress(rec, ts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	g := rec.ToWidget()
	if !g.Milestones[0].Completed || g.Milestones[1].Completed {
		t.Errorf("expected only the first milestone completed: %+v", g.Milestones)
	}
	if g.Milestones[0].CompletedAt == nil || !g.Milestones[0].CompletedAt.Equal(ts) {
		t.Errorf("completedAt not stamped: %+v", g.Milestones[0])
	}
}

func TestApplyLogProgress_LongTermCompletionFlag(t *testing.T) {
	rec := &GoalRecord{
		ID: "lt", Kind: string(widget.KindLongTerm),
		ProgressKind: string(widget.ProgressCompletion),
	}
	if err := applyLogProgress(rec, at(10, 8)); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !rec.Completed {
		t.Errorf("long-term completion flag should be set")
	}
	if rec.CurrentStreak != 0 {
		t.Errorf("streaks are daily-only, got %d", rec.CurrentStreak)
	}
}

func TestGoalRecord_ToWidgetRoundTrip(t *testing.T) {
	rec := &GoalRecord{
		ID: "g", Title: "Read", Kind: string(widget.KindLongTerm),
		ProgressKind: string(widget.ProgressMilestones),
	}
	ms := []widget.Milestone{{Title: "ch1", Completed: true}, {Title: "ch2"}}
	if err := rec.setMilestones(ms); err != nil {
		t.Fatalf("set milestones: %v", err)
	}
	g := rec.ToWidget()
	if len(g.Milestones) != 2 || g.Milestones[0].Title != "ch1" || !g.Milestones[0].Completed {
		t.Errorf("milestones did not survive the JSON column: %+v", g.Milestones)
	}
}

func TestGoalRecord_ToWidgetToleratesBadJSON(t *testing.T) {
	rec := &GoalRecord{
		ID: "g", Kind: string(widget.KindDaily),
		ProgressKind: string(widget.ProgressCompletion),
		Milestones:   []byte("{not json"),
	}
	g := rec.ToWidget()
	if len(g.Milestones) != 0 {
		t.Errorf("unreadable milestones should read as empty, got %+v", g.Milestones)
	}
}
