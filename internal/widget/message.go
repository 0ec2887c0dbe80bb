package widget

// fallbackMessage is returned when a context's pool is empty. An empty
// pool is a configuration error; the widget still has to say something.
const fallbackMessage = "Keep going!"

// Call-to-action pools. Selection is pool[hour % len(pool)]: the
// message is stable within an hour so it survives a refresh cycle, and
// rotates across the day without any randomness.
var (
	emptyMorningPool = []string{
		"A fresh day. Add a goal to get started!",
		"Nothing tracked yet. What matters today?",
		"Morning! Set your first goal.",
	}
	emptyAfternoonPool = []string{
		"Still a blank slate. Add a goal!",
		"The afternoon is yours. Track something?",
		"No goals yet. Start small.",
	}
	emptyEveningPool = []string{
		"Evenings are for planning. Add a goal for tomorrow.",
		"Nothing tracked. Set up tomorrow's win.",
	}
	emptyNightPool = []string{
		"Rest up. Add a goal when you're ready.",
		"Quiet night. Tomorrow is a good day to start.",
	}

	dailyCelebrationPool = []string{
		"Nailed it! That's how habits stick.",
		"Done! Your streak thanks you.",
		"Another one down. Great work!",
		"Checked off. Feels good, right?",
	}
	goalCelebrationPool = []string{
		"Milestone reached! Big steps.",
		"Progress logged. The long game pays off.",
		"One step closer to the finish line!",
	}
	endOfDayPool = []string{
		"Last call for today's goals.",
		"The day is almost over. One more push?",
		"Wrap up the day strong.",
	}
	longTermFocusPool = []string{
		"Good hour for the big picture.",
		"A little long-term progress goes far.",
		"Chip away at the big one now.",
	}
	allCompletePool = []string{
		"Everything done today. Enjoy it!",
		"Clean sweep! All habits complete.",
		"All done. See you tomorrow!",
	}
	inProgressPool = []string{
		"Time to make progress!",
		"Your goal is waiting.",
		"Small steps count. Log one now.",
		"Keep the momentum going.",
		"Now's a good moment for it.",
	}

	// Prefix/suffix pools for the progress-label splice on daily goals.
	progressPrefixPool = []string{
		"You're at ",
		"Currently ",
		"So far: ",
	}
	progressSuffixPool = []string{
		" — keep it up!",
		". Almost there!",
		". Finish strong!",
	}
)

// GenerateMessage maps a presentation context and the clock to the
// call-to-action text. Selection is deterministic in (context, hour);
// minute is accepted but deliberately ignored so the text does not
// churn between widget refreshes inside the same hour.
//
// progressLabel is only consulted for daily in-progress goals: every
// 5th rotation index splices the label between a prefix and suffix
// drawn from their own pools.
func GenerateMessage(ctx Context, hour, minute int, progressLabel string) string {
	_ = minute

	switch ctx {
	case ContextEmpty:
		return pick(emptyPoolForHour(hour), hour)
	case ContextDailyCelebration:
		return pick(dailyCelebrationPool, hour)
	case ContextGoalCelebration:
		return pick(goalCelebrationPool, hour)
	case ContextEndOfDay:
		return pick(endOfDayPool, hour)
	case ContextLongTermFocus:
		return pick(longTermFocusPool, hour)
	case ContextAllComplete:
		return pick(allCompletePool, hour)
	case ContextInProgress:
		if progressLabel != "" && hour%5 == 0 {
			return pick(progressPrefixPool, hour) + progressLabel + pick(progressSuffixPool, hour)
		}
		return pick(inProgressPool, hour)
	}
	return fallbackMessage
}

func emptyPoolForHour(hour int) []string {
	switch {
	case hour >= 5 && hour < 12:
		return emptyMorningPool
	case hour >= 12 && hour < 17:
		return emptyAfternoonPool
	case hour >= 17 && hour < 22:
		return emptyEveningPool
	default:
		return emptyNightPool
	}
}

func pick(pool []string, hour int) string {
	if len(pool) == 0 {
		return fallbackMessage
	}
	return pool[hour%len(pool)]
}
