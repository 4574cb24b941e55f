package training

import (
	"sort"

	"github.com/liftlogapp/backend/internal/calendar"
)

// ConsecutiveDays computes the streak of consecutive local calendar days,
// ending at today or yesterday, for which a log exists. Duplicate days
// collapse to one entry. If the most recent logged day is older than
// yesterday the streak is broken and the result is 0. Not having logged
// today yet does not break the streak until a full day is skipped.
func ConsecutiveDays(days []calendar.Date, today calendar.Date) int {
	if len(days) == 0 {
		return 0
	}

	unique := make(map[calendar.Date]struct{}, len(days))
	for _, d := range days {
		unique[d] = struct{}{}
	}

	sorted := make([]calendar.Date, 0, len(unique))
	for d := range unique {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Before(sorted[i])
	})

	latest := sorted[0]
	if today.DaysSince(latest) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].DaysSince(sorted[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
