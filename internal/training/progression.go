package training

// ProgressionStatus tags the recommended weight adjustment for an
// exercise's next session.
type ProgressionStatus string

const (
	ProgressionIncrease ProgressionStatus = "increase"
	ProgressionMaintain ProgressionStatus = "maintain"
	ProgressionDecrease ProgressionStatus = "decrease"
)

// Suggestion is a recommended next working weight with a human-readable
// reason.
type Suggestion struct {
	Weight float64           `json:"weight"`
	Status ProgressionStatus `json:"status"`
	Reason string            `json:"reason"`
}

// SuggestNextWeight recommends the next working weight for one exercise,
// from its most-recent-first history of completed sessions' working sets
// (warm-ups excluded upstream), a rep range, an increment step and a
// fallback/starting weight. Double progression with hysteresis: a single
// bad session never triggers a decrease, and an increase requires slack
// (reps in reserve) on the final set. Pure function, never fails, and the
// suggested weight is never negative.
func SuggestNextWeight(history []SessionSets, repMin, repMax int, increment, fallback float64) Suggestion {
	if len(history) == 0 {
		return Suggestion{
			Weight: fallback,
			Status: ProgressionMaintain,
			Reason: "first time with this exercise, start at the suggested weight",
		}
	}

	latest := history[0].Sets
	if len(latest) == 0 {
		return Suggestion{
			Weight: fallback,
			Status: ProgressionMaintain,
			Reason: "no working sets logged last session, keep the weight",
		}
	}

	lastWeight := latest[len(latest)-1].Weight

	// regression guard: same weight two sessions in a row with average
	// reps dropping by 2 or more means recovery beats progression
	if len(history) >= 2 && len(history[1].Sets) > 0 {
		prev := history[1].Sets
		prevWeight := prev[len(prev)-1].Weight
		if lastWeight == prevWeight && avgReps(prev)-avgReps(latest) >= 2 {
			return Suggestion{
				Weight: lastWeight,
				Status: ProgressionMaintain,
				Reason: "reps dropped noticeably since last session, hold the weight and recover",
			}
		}
	}

	if allSetsAtLeast(latest, repMax) && finalSetHasSlack(latest) {
		return Suggestion{
			Weight: lastWeight + increment,
			Status: ProgressionIncrease,
			Reason: "all sets hit the top of the rep range with reps to spare, add weight",
		}
	}

	if minReps(latest) < repMin {
		if len(history) >= 2 && len(history[1].Sets) > 0 && minReps(history[1].Sets) < repMin {
			suggested := lastWeight - increment
			if suggested < 0 {
				suggested = 0
			}
			return Suggestion{
				Weight: suggested,
				Status: ProgressionDecrease,
				Reason: "reps fell below the range two sessions in a row, drop the weight",
			}
		}
		return Suggestion{
			Weight: lastWeight,
			Status: ProgressionMaintain,
			Reason: "reps fell below the range, keep the weight and try again",
		}
	}

	if maxReps(latest) >= repMax {
		return Suggestion{
			Weight: lastWeight,
			Status: ProgressionMaintain,
			Reason: "at the top of the rep range, keep the weight until every set gets there",
		}
	}
	return Suggestion{
		Weight: lastWeight,
		Status: ProgressionMaintain,
		Reason: "below the top of the rep range, keep the weight and add reps",
	}
}

func avgReps(sets []WorkoutSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	total := 0
	for _, s := range sets {
		total += s.Reps
	}
	return float64(total) / float64(len(sets))
}

func allSetsAtLeast(sets []WorkoutSet, reps int) bool {
	for _, s := range sets {
		if s.Reps < reps {
			return false
		}
	}
	return true
}

// finalSetHasSlack reports whether the last set's reps-in-reserve is
// either unset or at least 1.
func finalSetHasSlack(sets []WorkoutSet) bool {
	rir := sets[len(sets)-1].RIR
	return rir == nil || *rir >= 1
}

func minReps(sets []WorkoutSet) int {
	m := sets[0].Reps
	for _, s := range sets[1:] {
		if s.Reps < m {
			m = s.Reps
		}
	}
	return m
}

func maxReps(sets []WorkoutSet) int {
	m := sets[0].Reps
	for _, s := range sets[1:] {
		if s.Reps > m {
			m = s.Reps
		}
	}
	return m
}
