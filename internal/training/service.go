package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
	"github.com/liftlogapp/backend/internal/telemetry/metrics"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrTemplateNotFound = errors.New("workout template not found")
	ErrRecordNotFound   = errors.New("session exercise record not found")
	ErrSetNotFound      = errors.New("workout set not found")
	ErrExerciseNotFound = errors.New("exercise not found in any template")

	// ErrSessionClosed is returned for any mutation attempted on a
	// session that has already been finished. Closed is terminal.
	ErrSessionClosed = errors.New("session already closed")
)

type sessionsRepo interface {
	GetSession(ctx context.Context, id int) (*WorkoutSession, error)
	GetOpenSession(ctx context.Context, userID string, day calendar.Date) (*WorkoutSession, error)
	CreateSession(ctx context.Context, userID string, templateID int, startedAt time.Time, bodyweight *float64) (*WorkoutSession, error)
	CloseSession(ctx context.Context, sessionID int, endedAt time.Time) error
	CreateExerciseRecords(ctx context.Context, sessionID int, items []TemplateItem) ([]SessionExerciseRecord, error)
	GetExerciseRecords(ctx context.Context, sessionID int) ([]SessionExerciseRecord, error)
	GetExerciseRecord(ctx context.Context, recordID int) (*SessionExerciseRecord, error)
	SetExerciseCompletion(ctx context.Context, recordID int, completed bool, completedAt *time.Time) error
}

type templateItemsSource interface {
	ListTemplateItems(ctx context.Context, templateID int) ([]TemplateItem, error)
}

type setsWriter interface {
	GetSet(ctx context.Context, setID int) (*WorkoutSet, error)
	InsertSet(ctx context.Context, set WorkoutSet) (*WorkoutSet, error)
	UpdateSet(ctx context.Context, set *WorkoutSet) error
}

// Service drives the per-user per-day workout session state machine:
// not-started -> open (create, idempotent), open -> open (completion
// toggles, set logging), open -> closed (finish, exactly once).
type Service struct {
	sessions  sessionsRepo
	templates templateItemsSource
	sets      setsWriter
	metrics   *metrics.Manager
	location  *time.Location
	now       func() time.Time
}

func NewService(
	sessions sessionsRepo,
	templates templateItemsSource,
	sets setsWriter,
	metricsManager *metrics.Manager,
	location *time.Location,
) *Service {
	return &Service{
		sessions:  sessions,
		templates: templates,
		sets:      sets,
		metrics:   metricsManager,
		location:  location,
		now:       time.Now,
	}
}

// SessionState is a session together with its exercise records and the
// derived progress fraction.
type SessionState struct {
	Session   *WorkoutSession         `json:"session"`
	Records   []SessionExerciseRecord `json:"records"`
	Completed int                     `json:"completed"`
	Total     int                     `json:"total"`
}

// StartSession gets or creates today's open session for the user.
// Creation is idempotent on the user's local calendar date: a second
// call without a close in between returns the same session. On genuine
// creation the full batch of exercise records for the template's items
// is materialized before returning, so progress is well-defined from
// the first moment. The returned bool is true when a new session was
// created.
func (s *Service) StartSession(
	ctx context.Context, userID string, templateID int, bodyweight *float64,
) (_ *SessionState, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.startSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today := calendar.DateOf(s.now(), s.location)

	existing, err := s.sessions.GetOpenSession(ctx, userID, today)
	if err == nil {
		state, err := s.sessionState(ctx, existing)
		return state, false, err
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, false, fmt.Errorf("get open session: %w", err)
	}

	items, err := s.templates.ListTemplateItems(ctx, templateID)
	if err != nil {
		return nil, false, fmt.Errorf("list template items: %w", err)
	}

	session, err := s.sessions.CreateSession(ctx, userID, templateID, s.now(), bodyweight)
	if err != nil {
		return nil, false, fmt.Errorf("create session: %w", err)
	}

	records, err := s.sessions.CreateExerciseRecords(ctx, session.ID, items)
	if err != nil {
		return nil, false, fmt.Errorf("create exercise records: %w", err)
	}

	log.Debugf("user %s started session %d with %d exercises", userID, session.ID, len(records))
	s.metrics.CounterSessionsStarted.Inc()

	return &SessionState{
		Session: session,
		Records: records,
		Total:   len(records),
	}, true, nil
}

// GetSessionState returns the session with its records and progress.
func (s *Service) GetSessionState(ctx context.Context, sessionID int) (_ *SessionState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.getSessionState")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionState(ctx, session)
}

func (s *Service) sessionState(ctx context.Context, session *WorkoutSession) (*SessionState, error) {
	records, err := s.sessions.GetExerciseRecords(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("get exercise records: %w", err)
	}

	completed := 0
	for _, r := range records {
		if r.IsCompleted {
			completed++
		}
	}

	return &SessionState{
		Session:   session,
		Records:   records,
		Completed: completed,
		Total:     len(records),
	}, nil
}

// SetExerciseCompletion flips one record's completion flag. Allowed only
// while the owning session is open; returns ErrSessionClosed otherwise.
func (s *Service) SetExerciseCompletion(ctx context.Context, recordID int, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.setExerciseCompletion")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	record, err := s.sessions.GetExerciseRecord(ctx, recordID)
	if err != nil {
		return err
	}

	session, err := s.sessions.GetSession(ctx, record.SessionID)
	if err != nil {
		return err
	}
	if !session.IsOpen() {
		return ErrSessionClosed
	}

	var completedAt *time.Time
	if completed {
		now := s.now()
		completedAt = &now
	}
	return s.sessions.SetExerciseCompletion(ctx, recordID, completed, completedAt)
}

// FinishSession sets the session's end timestamp, exactly once. Closing
// an already closed session returns ErrSessionClosed.
func (s *Service) FinishSession(ctx context.Context, sessionID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.finishSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.IsOpen() {
		return ErrSessionClosed
	}

	if err := s.sessions.CloseSession(ctx, sessionID, s.now()); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	log.Debugf("session %d finished for user %s", sessionID, session.UserID)
	s.metrics.CounterSessionsFinished.Inc()
	return nil
}

// LogSet appends a set to an open session.
func (s *Service) LogSet(ctx context.Context, set WorkoutSet) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.logSet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.sessions.GetSession(ctx, set.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsOpen() {
		return nil, ErrSessionClosed
	}

	if set.CreatedAt.IsZero() {
		set.CreatedAt = s.now()
	}

	added, err := s.sets.InsertSet(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	s.metrics.CounterSetsLogged.Inc()
	return added, nil
}

// CorrectSet updates a previously logged set in place. Sets may only be
// corrected before the owning session closes.
func (s *Service) CorrectSet(ctx context.Context, setID int, weight float64, reps int, rir *int, warmup bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.correctSet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	set, err := s.sets.GetSet(ctx, setID)
	if err != nil {
		return err
	}

	session, err := s.sessions.GetSession(ctx, set.SessionID)
	if err != nil {
		return err
	}
	if !session.IsOpen() {
		return ErrSessionClosed
	}

	set.Weight = weight
	set.Reps = reps
	set.RIR = rir
	set.IsWarmup = warmup
	return s.sets.UpdateSet(ctx, set)
}
