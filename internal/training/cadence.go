package training

import (
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
)

type DayType string

const (
	DayTypeWorkout DayType = "workout"
	DayTypeRest    DayType = "rest"
)

// CadenceInfo is the result of classifying "today" under the fixed
// 2-on/1-off schedule.
type CadenceInfo struct {
	DayType           DayType `json:"dayType"`
	NextCyclePosition int     `json:"nextCyclePosition"`
	TrainedToday      bool    `json:"trainedToday"`
	TrainedYesterday  bool    `json:"trainedYesterday"`
	TrainedDayBefore  bool    `json:"trainedDayBefore"`
	LastCyclePosition int     `json:"lastCyclePosition,omitempty"` // 0 = no prior session
	OpenSessionID     int     `json:"openSessionId,omitempty"`     // 0 = none open today
}

// EvaluateCadence classifies today from recent session history
// (most-recent-first). Today is a rest day iff the user trained on both
// of the two immediately preceding local calendar days; a day counts as
// trained if any session started on that local date, regardless of
// completion state. The next template cycle position is the complement
// of the last session's position within {1, 2}, defaulting to 1 with no
// history. Pure function, never fails.
func EvaluateCadence(recent []SessionDigest, now time.Time, loc *time.Location) CadenceInfo {
	today := calendar.DateOf(now, loc)
	yesterday := today.AddDays(-1)
	dayBefore := today.AddDays(-2)

	info := CadenceInfo{
		DayType:           DayTypeWorkout,
		NextCyclePosition: 1,
	}

	for _, s := range recent {
		day := calendar.DateOf(s.StartedAt, loc)
		switch day {
		case today:
			info.TrainedToday = true
			if s.EndedAt == nil && info.OpenSessionID == 0 {
				info.OpenSessionID = s.ID
			}
		case yesterday:
			info.TrainedYesterday = true
		case dayBefore:
			info.TrainedDayBefore = true
		}
	}

	if info.TrainedYesterday && info.TrainedDayBefore {
		info.DayType = DayTypeRest
	}

	if len(recent) > 0 {
		info.LastCyclePosition = recent[0].CyclePosition
		if info.LastCyclePosition == 1 {
			info.NextCyclePosition = 2
		}
	}

	return info
}
