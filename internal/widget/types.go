package widget

import (
	"time"
)

// GoalKind distinguishes recurring habits from long-term objectives
type GoalKind string

const (
	KindDaily    GoalKind = "DAILY"
	KindLongTerm GoalKind = "LONG_TERM"
)

// ProgressKind determines which progress representation a goal carries
type ProgressKind string

const (
	ProgressCompletion ProgressKind = "COMPLETION"
	ProgressPercent    ProgressKind = "PERCENTAGE"
	ProgressMilestones ProgressKind = "MILESTONES"
	ProgressNumeric    ProgressKind = "NUMERIC"
)

// Emotion is the mascot's displayed emotional state
type Emotion string

const (
	EmotionHappy     Emotion = "HAPPY"
	EmotionNeutral   Emotion = "NEUTRAL"
	EmotionWorried   Emotion = "WORRIED"
	EmotionSad       Emotion = "SAD"
	EmotionCelebrate Emotion = "CELEBRATE"
)

// Context is one of the seven mutually exclusive presentation states.
// Exactly one is selected per evaluation by the fixed-precedence rules
// in SelectContext.
type Context string

const (
	ContextEmpty            Context = "EMPTY"
	ContextDailyCelebration Context = "DAILY_CELEBRATION"
	ContextGoalCelebration  Context = "GOAL_CELEBRATION"
	ContextEndOfDay         Context = "END_OF_DAY"
	ContextLongTermFocus    Context = "LONG_TERM_FOCUS"
	ContextAllComplete      Context = "ALL_COMPLETE"
	ContextInProgress       Context = "IN_PROGRESS"
)

// Status summarizes the resolved widget state for background theming.
// Each status has a fixed integer code (see StatusCode) so the variant
// formula never depends on a runtime string hash.
type Status string

const (
	StatusIdle        Status = "IDLE"
	StatusOnTrack     Status = "ON_TRACK"
	StatusBehind      Status = "BEHIND"
	StatusUrgent      Status = "URGENT"
	StatusCelebrating Status = "CELEBRATING"
)

// TimeBand is one of four fixed day segments used for background theming
type TimeBand string

const (
	BandDawn  TimeBand = "DAWN"
	BandDay   TimeBand = "DAY"
	BandDusk  TimeBand = "DUSK"
	BandNight TimeBand = "NIGHT"
)

// Milestone is one ordered step of a milestone-tracked goal
type Milestone struct {
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Goal is the core's read-only view of one tracked habit or objective.
// Only the progress fields matching ProgressKind are meaningful.
type Goal struct {
	// Identity
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kind  GoalKind `json:"kind"`

	// Progress representation
	Progress        ProgressKind `json:"progressKind"`
	Completed       bool         `json:"completed"`
	PercentComplete float64      `json:"percentComplete"`
	Milestones      []Milestone  `json:"milestones,omitempty"`
	CurrentValue    float64      `json:"currentValue"`
	TargetValue     float64      `json:"targetValue"`
	DailyTarget     float64      `json:"dailyTarget"`
	Unit            string       `json:"unit,omitempty"`

	// Time anchors
	CreatedAt       time.Time  `json:"createdAt"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`

	// Daily-goal bookkeeping
	CurrentStreak    int         `json:"currentStreak"`
	LongestStreak    int         `json:"longestStreak"`
	TodayCompletions []time.Time `json:"todayCompletions,omitempty"`
}

// MascotState is the mascot's resolved display state. Celebrate is the
// only emotion with a meaningful expiry; all other states are stateless
// projections recomputed on every evaluation.
type MascotState struct {
	Emotion    Emotion    `json:"emotion"`
	FrameIndex uint       `json:"frameIndex"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// TopGoalView is a read-only projection of the selected goal handed to
// rendering surfaces. It never round-trips back into a Goal.
type TopGoalView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Kind          GoalKind `json:"kind"`
	ProgressLabel string   `json:"progressLabel"`
	Urgency       float64  `json:"urgency"`
	CurrentStreak int      `json:"currentStreak"`
}

// WidgetSnapshot is the sole contract surface exposed to every rendering
// consumer. It is created fresh on each generation and never mutated;
// the next generation supersedes it.
type WidgetSnapshot struct {
	Version            uint         `json:"version"`
	GeneratedAt        time.Time    `json:"generatedAt"`
	Context            Context      `json:"context"`
	TopGoal            *TopGoalView `json:"topGoal,omitempty"`
	Mascot             MascotState  `json:"mascot"`
	CTA                *string      `json:"cta,omitempty"`
	BackgroundStatus   *Status      `json:"backgroundStatus,omitempty"`
	BackgroundTimeBand *TimeBand    `json:"backgroundTimeBand,omitempty"`
	BackgroundVariant  *uint        `json:"backgroundVariant,omitempty"`
}

// sameCalendarDay reports whether a and b fall on the same calendar day
// in a's location.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// completionsOn filters TodayCompletions down to timestamps on the same
// calendar day as now. Stale entries are skipped, never mutated.
func (g Goal) completionsOn(now time.Time) []time.Time {
	var out []time.Time
	for _, ts := range g.TodayCompletions {
		if sameCalendarDay(now, ts) {
			out = append(out, ts)
		}
	}
	return out
}

// todayValue returns the progress value accumulated today for a daily
// numeric goal. A value last touched on a previous day counts as zero.
func (g Goal) todayValue(now time.Time) float64 {
	if g.LastCompletedAt == nil || !sameCalendarDay(now, *g.LastCompletedAt) {
		return 0
	}
	return g.CurrentValue
}

// IsCompleted reports whether the goal counts as done at the given
// instant. Daily goals complete per calendar day; long-term goals
// complete per their progress representation.
func (g Goal) IsCompleted(now time.Time) bool {
	if g.Kind == KindDaily {
		if g.Progress == ProgressNumeric {
			return g.DailyTarget > 0 && g.todayValue(now) >= g.DailyTarget
		}
		return len(g.completionsOn(now)) > 0
	}
	switch g.Progress {
	case ProgressCompletion:
		return g.Completed
	case ProgressPercent:
		return g.PercentComplete >= 100
	case ProgressMilestones:
		if len(g.Milestones) == 0 {
			return false
		}
		for _, m := range g.Milestones {
			if !m.Completed {
				return false
			}
		}
		return true
	case ProgressNumeric:
		return g.TargetValue > 0 && g.CurrentValue >= g.TargetValue
	}
	return false
}

// progressFraction returns completed progress in [0,1] regardless of
// progress representation.
func (g Goal) progressFraction(now time.Time) float64 {
	switch g.Progress {
	case ProgressCompletion:
		if g.IsCompleted(now) {
			return 1
		}
		return 0
	case ProgressPercent:
		return clamp(g.PercentComplete/100, 0, 1)
	case ProgressMilestones:
		if len(g.Milestones) == 0 {
			return 0
		}
		done := 0
		for _, m := range g.Milestones {
			if m.Completed {
				done++
			}
		}
		return float64(done) / float64(len(g.Milestones))
	case ProgressNumeric:
		if g.Kind == KindDaily {
			if g.DailyTarget <= 0 {
				return 0
			}
			return clamp(g.todayValue(now)/g.DailyTarget, 0, 1)
		}
		if g.TargetValue <= 0 {
			return 0
		}
		return clamp(g.CurrentValue/g.TargetValue, 0, 1)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
