package widget

import (
	"testing"
	"time"
)

func incompleteDaily(id string) Goal {
	return Goal{ID: id, Kind: KindDaily, Progress: ProgressCompletion, CreatedAt: ts(8, 0)}
}

func completedDaily(id string, at time.Time) Goal {
	return Goal{
		ID: id, Kind: KindDaily, Progress: ProgressCompletion,
		CreatedAt:        ts(8, 0),
		TodayCompletions: []time.Time{at},
		LastCompletedAt:  ptr(at),
	}
}

func TestSelectContext_Empty(t *testing.T) {
	sel := SelectContext(nil, ts(14, 0))
	if sel.Context != ContextEmpty || sel.Goal != nil {
		t.Fatalf("expected Empty with no goal, got %+v", sel)
	}
}

func TestSelectContext_RecentCelebration(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{
		incompleteDaily("a"),
		completedDaily("b", now.Add(-2*time.Minute)),
	}
	sel := SelectContext(goals, now)
	if sel.Context != ContextDailyCelebration {
		t.Fatalf("expected DailyCelebration, got %s", sel.Context)
	}
	if sel.Goal == nil || sel.Goal.ID != "b" {
		t.Errorf("expected goal b selected, got %+v", sel.Goal)
	}
}

func TestSelectContext_CelebrationTieBreaksMostRecent(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{
		completedDaily("older", now.Add(-4*time.Minute)),
		completedDaily("newer", now.Add(-1*time.Minute)),
	}
	sel := SelectContext(goals, now)
	if sel.Goal == nil || sel.Goal.ID != "newer" {
		t.Errorf("expected most recent completion to win, got %+v", sel.Goal)
	}
}

func TestSelectContext_CelebrationDistinguishesLongTerm(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{{
		ID: "lt", Kind: KindLongTerm, Progress: ProgressPercent,
		PercentComplete: 100, CreatedAt: ts(8, 0),
		LastCompletedAt: ptr(now.Add(-1 * time.Minute)),
	}}
	sel := SelectContext(goals, now)
	if sel.Context != ContextGoalCelebration {
		t.Errorf("expected GoalCelebration for long-term completion, got %s", sel.Context)
	}
}

func TestSelectContext_CelebrationWindowExpires(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{
		incompleteDaily("a"),
		completedDaily("b", now.Add(-6*time.Minute)),
	}
	sel := SelectContext(goals, now)
	if sel.Context != ContextInProgress {
		t.Errorf("six-minute-old completion must not celebrate, got %s", sel.Context)
	}
}

func TestSelectContext_EndOfDay(t *testing.T) {
	for _, h := range []int{23, 0, 2, 4} {
		now := time.Date(2025, 6, 10, h, 0, 0, 0, time.UTC)
		sel := SelectContext([]Goal{incompleteDaily("a")}, now)
		if sel.Context != ContextEndOfDay {
			t.Errorf("hour %d: expected EndOfDay, got %s", h, sel.Context)
		}
		if sel.Goal == nil {
			t.Errorf("hour %d: EndOfDay must select a goal", h)
		}
	}
	sel := SelectContext([]Goal{incompleteDaily("a")}, ts(5, 0))
	if sel.Context == ContextEndOfDay {
		t.Errorf("05:00 is outside the end-of-day window")
	}
}

func TestSelectContext_LongTermFocusHour(t *testing.T) {
	now := ts(9, 30)
	lt := Goal{
		ID: "lt", Kind: KindLongTerm, Progress: ProgressPercent,
		PercentComplete: 20, CreatedAt: now.AddDate(0, 0, -10),
		Deadline: ptr(now.AddDate(0, 0, 10)),
	}
	sel := SelectContext([]Goal{incompleteDaily("a"), lt}, now)
	if sel.Context != ContextLongTermFocus {
		t.Fatalf("expected LongTermFocus at 09:00, got %s", sel.Context)
	}
	if sel.Goal == nil || sel.Goal.ID != "lt" {
		t.Errorf("expected long-term goal selected, got %+v", sel.Goal)
	}

	// Without an incomplete long-term goal the rule does not fire.
	sel = SelectContext([]Goal{incompleteDaily("a")}, now)
	if sel.Context != ContextInProgress {
		t.Errorf("focus hour without long-term goals should fall through, got %s", sel.Context)
	}
}

func TestSelectContext_AllDailyComplete(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{
		completedDaily("first", ts(8, 0)),
		completedDaily("last", ts(11, 0)),
	}
	sel := SelectContext(goals, now)
	if sel.Context != ContextAllComplete {
		t.Fatalf("expected AllComplete, got %s", sel.Context)
	}
	if sel.Goal == nil || sel.Goal.ID != "last" {
		t.Errorf("expected most recently completed daily, got %+v", sel.Goal)
	}
}

func TestSelectContext_InProgressPrefersDailies(t *testing.T) {
	now := ts(14, 0)
	lt := Goal{
		ID: "lt", Kind: KindLongTerm, Progress: ProgressPercent,
		CreatedAt: now.AddDate(0, -6, 0), Deadline: ptr(now.Add(time.Hour)),
	}
	sel := SelectContext([]Goal{lt, incompleteDaily("d")}, now)
	if sel.Context != ContextInProgress {
		t.Fatalf("expected InProgress, got %s", sel.Context)
	}
	// The near-overdue long-term goal scores higher, but incomplete
	// dailies form the candidate pool first.
	if sel.Goal == nil || sel.Goal.ID != "d" {
		t.Errorf("expected daily goal selected, got %+v", sel.Goal)
	}
}

func TestSelectContext_InProgressTieStable(t *testing.T) {
	now := ts(14, 0)
	goals := []Goal{incompleteDaily("first"), incompleteDaily("second")}
	for i := 0; i < 5; i++ {
		sel := SelectContext(goals, now)
		if sel.Goal == nil || sel.Goal.ID != "first" {
			t.Fatalf("tie must resolve to first-encountered goal, got %+v", sel.Goal)
		}
	}
}

func TestSelectContext_ExactlyOneContext(t *testing.T) {
	// Precedence is total: every (goals, now) yields a context.
	sets := [][]Goal{
		nil,
		{incompleteDaily("a")},
		{completedDaily("a", ts(13, 58))},
		{{ID: "lt", Kind: KindLongTerm, Progress: ProgressNumeric, TargetValue: 10, CurrentValue: 10}},
	}
	for h := 0; h < 24; h++ {
		now := time.Date(2025, 6, 10, h, 0, 0, 0, time.UTC)
		for i, goals := range sets {
			sel := SelectContext(goals, now)
			if sel.Context == "" {
				t.Errorf("set %d hour %d: no context selected", i, h)
			}
		}
	}
}
