package widget

import (
	"fmt"
	"strconv"
	"time"
)

// SnapshotVersion is bumped whenever a snapshot field's meaning or the
// context precedence order changes, since consumers branch on it.
const SnapshotVersion uint = 1

// BuildSnapshot runs the full derivation pipeline: context selection,
// urgency scoring, mascot resolution, message generation and background
// theming, composed into one immutable snapshot.
//
// prev is the mascot state from the previous generation, threaded in
// explicitly so an active Celebrate window survives regeneration. The
// function is total: malformed goals are skipped individually, and with
// no usable input it degrades to the Empty context rather than failing.
func BuildSnapshot(goals []Goal, now time.Time, prev *MascotState) WidgetSnapshot {
	valid := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if wellFormed(g) {
			valid = append(valid, g)
		}
	}

	sel := SelectContext(valid, now)

	urgency := 0.0
	if sel.Goal != nil {
		urgency = Score(*sel.Goal, now)
	}

	mascot := ResolveMascot(prev, sel, urgency, now)
	status := statusFor(sel, urgency, mascot)

	var top *TopGoalView
	label := ""
	if sel.Goal != nil {
		label = ProgressLabel(*sel.Goal, now)
		top = &TopGoalView{
			ID:            sel.Goal.ID,
			Title:         sel.Goal.Title,
			Kind:          sel.Goal.Kind,
			ProgressLabel: label,
			Urgency:       urgency,
			CurrentStreak: sel.Goal.CurrentStreak,
		}
	}

	spliceLabel := ""
	if sel.Context == ContextInProgress && sel.Goal != nil && sel.Goal.Kind == KindDaily {
		spliceLabel = label
	}
	cta := GenerateMessage(sel.Context, now.Hour(), now.Minute(), spliceLabel)

	band := BandForHour(now.Hour())
	variant := Variant(now, status)

	return WidgetSnapshot{
		Version:            SnapshotVersion,
		GeneratedAt:        now,
		Context:            sel.Context,
		TopGoal:            top,
		Mascot:             mascot,
		CTA:                &cta,
		BackgroundStatus:   &status,
		BackgroundTimeBand: &band,
		BackgroundVariant:  &variant,
	}
}

// statusFor summarizes the evaluation for background theming. A held or
// fresh celebration wins; otherwise the status follows the urgency of
// the selected goal.
func statusFor(sel Selection, urgency float64, mascot MascotState) Status {
	if mascot.Emotion == EmotionCelebrate {
		return StatusCelebrating
	}
	if sel.Goal == nil {
		return StatusIdle
	}
	switch {
	case urgency >= worriedBelow:
		return StatusUrgent
	case urgency >= neutralBelow:
		return StatusBehind
	default:
		return StatusOnTrack
	}
}

// ProgressLabel renders a goal's progress as the human-readable label
// shown next to the mascot, formatted per progress representation.
func ProgressLabel(g Goal, now time.Time) string {
	switch g.Progress {
	case ProgressCompletion:
		if g.IsCompleted(now) {
			return "Done"
		}
		return "Not yet"
	case ProgressPercent:
		return strconv.FormatFloat(g.PercentComplete, 'f', -1, 64) + "%"
	case ProgressMilestones:
		done := 0
		for _, m := range g.Milestones {
			if m.Completed {
				done++
			}
		}
		return fmt.Sprintf("%d/%d milestones", done, len(g.Milestones))
	case ProgressNumeric:
		current := g.CurrentValue
		target := g.TargetValue
		if g.Kind == KindDaily {
			current = g.todayValue(now)
			target = g.DailyTarget
		}
		label := formatValue(current) + "/" + formatValue(target)
		if g.Unit != "" {
			label += " " + g.Unit
		}
		return label
	}
	return ""
}

// wellFormed rejects goals the core cannot interpret: missing identity
// or an unknown kind/progress discriminator. Rejection is per goal and
// never aborts snapshot generation.
func wellFormed(g Goal) bool {
	if g.ID == "" {
		return false
	}
	if g.Kind != KindDaily && g.Kind != KindLongTerm {
		return false
	}
	switch g.Progress {
	case ProgressCompletion, ProgressPercent, ProgressMilestones, ProgressNumeric:
		return true
	}
	return false
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
