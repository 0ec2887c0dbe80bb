package widget

import (
	"time"
)

// CelebrationWindow is how long a fresh completion keeps its
// celebration context (and the mascot's Celebrate hold).
const CelebrationWindow = 5 * time.Minute

// Hours during which incomplete long-term goals take the spotlight.
var focusHours = [...]int{9, 20}

// Selection is the outcome of the context decision tree: the chosen
// presentation context plus, when one applies, the selected goal.
type Selection struct {
	Context Context
	Goal    *Goal
}

// SelectContext evaluates the fixed-precedence decision tree over the
// goal set. Rules are checked top to bottom; the first match wins:
//
//  1. empty goal set
//  2. a completion within the celebration window (daily vs long-term)
//  3. end-of-day hours [23:00, 05:00)
//  4. long-term focus hours with an incomplete long-term goal
//  5. every daily goal complete
//  6. highest-urgency incomplete goal, dailies first
//
// Celebration and end-of-day are time- or event-triggered overrides and
// must win over routine urgency ranking.
func SelectContext(goals []Goal, now time.Time) Selection {
	if len(goals) == 0 {
		return Selection{Context: ContextEmpty}
	}

	if sel, ok := recentCelebration(goals, now); ok {
		return sel
	}

	hour := now.Hour()
	if hour >= 23 || hour < 5 {
		g := mostUrgent(goals, now)
		return Selection{Context: ContextEndOfDay, Goal: g}
	}

	if isFocusHour(hour) {
		var candidates []Goal
		for _, g := range goals {
			if g.Kind == KindLongTerm && !g.IsCompleted(now) {
				candidates = append(candidates, g)
			}
		}
		if len(candidates) > 0 {
			return Selection{Context: ContextLongTermFocus, Goal: mostUrgent(candidates, now)}
		}
	}

	if sel, ok := allDailyComplete(goals, now); ok {
		return sel
	}

	return inProgress(goals, now)
}

// recentCelebration finds a completed goal whose completion instant
// falls inside the celebration window, preferring the most recent.
func recentCelebration(goals []Goal, now time.Time) (Selection, bool) {
	var best *Goal
	for i := range goals {
		g := goals[i]
		if !g.IsCompleted(now) || g.LastCompletedAt == nil {
			continue
		}
		age := now.Sub(*g.LastCompletedAt)
		if age < 0 || age >= CelebrationWindow {
			continue
		}
		if best == nil || g.LastCompletedAt.After(*best.LastCompletedAt) {
			best = &goals[i]
		}
	}
	if best == nil {
		return Selection{}, false
	}
	ctx := ContextGoalCelebration
	if best.Kind == KindDaily {
		ctx = ContextDailyCelebration
	}
	return Selection{Context: ctx, Goal: best}, true
}

// allDailyComplete matches when at least one daily goal exists and none
// are incomplete. Selects the most recently completed daily, falling
// back to creation time when completion instants are missing.
func allDailyComplete(goals []Goal, now time.Time) (Selection, bool) {
	var dailies []Goal
	for _, g := range goals {
		if g.Kind == KindDaily {
			dailies = append(dailies, g)
		}
	}
	if len(dailies) == 0 {
		return Selection{}, false
	}
	for _, g := range dailies {
		if !g.IsCompleted(now) {
			return Selection{}, false
		}
	}
	best := 0
	for i := 1; i < len(dailies); i++ {
		if completionOrder(dailies[i]).After(completionOrder(dailies[best])) {
			best = i
		}
	}
	return Selection{Context: ContextAllComplete, Goal: &dailies[best]}, true
}

// inProgress is the fallback rule: pick the highest-urgency incomplete
// daily goal, else the highest-urgency incomplete long-term goal. With
// no candidate at all the selection degrades to Empty.
func inProgress(goals []Goal, now time.Time) Selection {
	var dailies, longTerms []Goal
	for _, g := range goals {
		if g.IsCompleted(now) {
			continue
		}
		if g.Kind == KindDaily {
			dailies = append(dailies, g)
		} else {
			longTerms = append(longTerms, g)
		}
	}
	pool := dailies
	if len(pool) == 0 {
		pool = longTerms
	}
	if len(pool) == 0 {
		return Selection{Context: ContextEmpty}
	}
	return Selection{Context: ContextInProgress, Goal: mostUrgent(pool, now)}
}

// mostUrgent returns the goal with the highest urgency score. Ties go
// to the first-encountered goal, so selection is stable across runs.
func mostUrgent(goals []Goal, now time.Time) *Goal {
	if len(goals) == 0 {
		return nil
	}
	best := 0
	bestScore := Score(goals[0], now)
	for i := 1; i < len(goals); i++ {
		s := Score(goals[i], now)
		if s > bestScore {
			best = i
			bestScore = s
		}
	}
	return &goals[best]
}

func completionOrder(g Goal) time.Time {
	if g.LastCompletedAt != nil {
		return *g.LastCompletedAt
	}
	return g.CreatedAt
}

func isFocusHour(hour int) bool {
	for _, h := range focusHours {
		if h == hour {
			return true
		}
	}
	return false
}
