package widget

import (
	"time"
)

// Urgency thresholds for the emotion projection.
const (
	happyBelow   = 0.2
	neutralBelow = 0.5
	worriedBelow = 0.8
)

// ResolveMascot computes the mascot state for one evaluation.
//
// An unexpired Celebrate state from the previous evaluation is held
// unchanged: a celebration cannot be interrupted early. A celebration
// context starts a fresh Celebrate window. Every other context projects
// the emotion straight from the selected goal's urgency; with no goal
// selected the mascot is Neutral. FrameIndex outside Celebrate is
// always 0 (reserved for multi-frame idle animation).
func ResolveMascot(prev *MascotState, sel Selection, urgency float64, now time.Time) MascotState {
	if prev != nil && prev.Emotion == EmotionCelebrate &&
		prev.ExpiresAt != nil && now.Before(*prev.ExpiresAt) {
		return *prev
	}

	switch sel.Context {
	case ContextDailyCelebration, ContextGoalCelebration, ContextAllComplete:
		expires := now.Add(CelebrationWindow)
		return MascotState{Emotion: EmotionCelebrate, FrameIndex: 0, ExpiresAt: &expires}
	}

	if sel.Goal == nil {
		return MascotState{Emotion: EmotionNeutral, FrameIndex: 0}
	}
	return MascotState{Emotion: emotionForUrgency(urgency), FrameIndex: 0}
}

func emotionForUrgency(urgency float64) Emotion {
	switch {
	case urgency < happyBelow:
		return EmotionHappy
	case urgency < neutralBelow:
		return EmotionNeutral
	case urgency < worriedBelow:
		return EmotionWorried
	default:
		return EmotionSad
	}
}
