package training

import "time"

// WorkoutSession tracks one day's workout. EndedAt == nil means the
// session is still open; a closed session is never reopened.
type WorkoutSession struct {
	ID            int        `json:"id"`
	UserID        string     `json:"userId"`
	TemplateID    int        `json:"templateId"`
	CyclePosition int        `json:"cyclePosition"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	Bodyweight    *float64   `json:"bodyweight,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

func (s *WorkoutSession) IsOpen() bool {
	return s.EndedAt == nil
}

// SessionExerciseRecord links a session to one template item. The full
// set of records is materialized in one batch when the session starts,
// so completed/total progress is always well-defined.
type SessionExerciseRecord struct {
	ID             int        `json:"id"`
	SessionID      int        `json:"sessionId"`
	TemplateItemID int        `json:"templateItemId"`
	ExerciseID     int        `json:"exerciseId"`
	IsCompleted    bool       `json:"isCompleted"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// WorkoutSet is one logged set. Warm-up sets are excluded from
// progression decisions.
type WorkoutSet struct {
	ID         int       `json:"id"`
	SessionID  int       `json:"sessionId"`
	ExerciseID int       `json:"exerciseId"`
	SetNumber  int       `json:"setNumber"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	RIR        *int      `json:"rir,omitempty"`
	IsWarmup   bool      `json:"isWarmup"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionDigest is the slim per-session view the cadence rule works on.
type SessionDigest struct {
	ID            int        `json:"id"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	CyclePosition int        `json:"cyclePosition"`
}

// SessionSets groups one completed session's working sets for one
// exercise, ordered by set number.
type SessionSets struct {
	SessionID int          `json:"sessionId"`
	StartedAt time.Time    `json:"startedAt"`
	Sets      []WorkoutSet `json:"sets"`
}
