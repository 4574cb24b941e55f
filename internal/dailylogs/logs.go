package dailylogs

import "github.com/liftlogapp/backend/internal/calendar"

// BodyweightLog is one row per user per local calendar day.
type BodyweightLog struct {
	UserID  string        `json:"userId"`
	Day     calendar.Date `json:"day"`
	Weight  float64       `json:"weight"`
	WaistCm *float64      `json:"waistCm,omitempty"`
}

// DietLog is one row per user per local calendar day.
type DietLog struct {
	UserID   string        `json:"userId"`
	Day      calendar.Date `json:"day"`
	ProteinG int           `json:"proteinG"`
	Calories int           `json:"calories"`
	Steps    int           `json:"steps"`
}

// UserProfile holds the per-user goal data, one row per user.
type UserProfile struct {
	UserID         string        `json:"userId"`
	StartingWeight float64       `json:"startingWeight"`
	StartingDate   calendar.Date `json:"startingDate"`
	GoalWeight     *float64      `json:"goalWeight,omitempty"`
}

// Stats are the all-time totals shown on the stats page.
type Stats struct {
	WorkoutDays   int `json:"workoutDays"`
	TotalSessions int `json:"totalSessions"`
	TotalSets     int `json:"totalSets"`
	DietDays      int `json:"dietDays"`
	TotalProteinG int `json:"totalProteinG"`
	TotalCalories int `json:"totalCalories"`
}
