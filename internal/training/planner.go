package training

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=planner_mocks_test.go -package=training_test

// recentSessionsLimit is comfortably more than the cadence rule needs
// (the two preceding days plus today's possible session).
const recentSessionsLimit = 10

// progressionSessionsLimit is how many completed sessions back the
// progression rules look. The rules themselves need at most two.
const progressionSessionsLimit = 3

type plannerSessionsRepo interface {
	ListRecentSessions(ctx context.Context, userID string, limit int) ([]SessionDigest, error)
	ListSessionDays(ctx context.Context, userID string) ([]calendar.Date, error)
}

type templatesSource interface {
	ListTemplates(ctx context.Context) ([]WorkoutTemplate, error)
	ListTemplateItems(ctx context.Context, templateID int) ([]TemplateItem, error)
}

type exerciseHistorySource interface {
	ExerciseHistory(ctx context.Context, userID string, exerciseID int, sessionsLimit int) ([]SessionSets, error)
}

type sessionStateSource interface {
	GetSessionState(ctx context.Context, sessionID int) (*SessionState, error)
}

type dietDaysSource interface {
	DietLogDays(ctx context.Context, userID string) ([]calendar.Date, error)
}

// Planner answers "what should the user see and do right now". It only
// sequences repo fetches and the pure decision functions; it contains no
// decision logic of its own.
type Planner struct {
	sessions  plannerSessionsRepo
	templates templatesSource
	history   exerciseHistorySource
	lifecycle sessionStateSource
	dietDays  dietDaysSource
	location  *time.Location
	now       func() time.Time
}

func NewPlanner(
	sessions plannerSessionsRepo,
	templates templatesSource,
	history exerciseHistorySource,
	lifecycle sessionStateSource,
	dietDays dietDaysSource,
	location *time.Location,
) *Planner {
	return &Planner{
		sessions:  sessions,
		templates: templates,
		history:   history,
		lifecycle: lifecycle,
		dietDays:  dietDays,
		location:  location,
		now:       time.Now,
	}
}

// TodayPlan is the full per-request overview: cadence classification,
// the template to serve (nil when none is configured), its items with
// per-exercise weight suggestions, and the resumable session, if any.
type TodayPlan struct {
	Day         calendar.Date      `json:"day"`
	Cadence     CadenceInfo        `json:"cadence"`
	Template    *WorkoutTemplate   `json:"template,omitempty"`
	Items       []TemplateItem     `json:"items,omitempty"`
	Session     *SessionState      `json:"session,omitempty"`
	Suggestions map[int]Suggestion `json:"suggestions,omitempty"` // keyed by exercise ID
}

// Streaks holds the independently computed daily streaks.
type Streaks struct {
	Workout int `json:"workout"`
	Diet    int `json:"diet"`
}

func (p *Planner) Today(ctx context.Context, userID string) (_ *TodayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.planner.today")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	recent, err := p.sessions.ListRecentSessions(ctx, userID, recentSessionsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}

	now := p.now()
	plan := &TodayPlan{
		Day:     calendar.DateOf(now, p.location),
		Cadence: EvaluateCadence(recent, now, p.location),
	}

	templates, err := p.templates.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	if len(templates) == 0 {
		// no determinable template, the client shows a neutral state
		log.Warnf("no workout templates configured, serving empty plan to user %s", userID)
		return plan, nil
	}

	template := templates[0]
	for _, t := range templates {
		if t.CyclePosition == plan.Cadence.NextCyclePosition {
			template = t
			break
		}
	}
	plan.Template = &template

	items, err := p.templates.ListTemplateItems(ctx, template.ID)
	if err != nil {
		return nil, fmt.Errorf("list template items: %w", err)
	}
	plan.Items = items

	if plan.Cadence.OpenSessionID != 0 {
		state, err := p.lifecycle.GetSessionState(ctx, plan.Cadence.OpenSessionID)
		if err != nil {
			return nil, fmt.Errorf("get open session state: %w", err)
		}
		plan.Session = state
	}

	plan.Suggestions = make(map[int]Suggestion, len(items))
	for _, item := range items {
		suggestion, err := p.SuggestForItem(ctx, userID, item)
		if err != nil {
			return nil, err
		}
		plan.Suggestions[item.Exercise.ID] = suggestion
	}

	return plan, nil
}

// SuggestForItem fetches one exercise's recent working-set history and
// runs the progression rules over it.
func (p *Planner) SuggestForItem(ctx context.Context, userID string, item TemplateItem) (Suggestion, error) {
	history, err := p.history.ExerciseHistory(ctx, userID, item.Exercise.ID, progressionSessionsLimit)
	if err != nil {
		return Suggestion{}, fmt.Errorf("exercise history for %d: %w", item.Exercise.ID, err)
	}

	fallback := 0.0
	if item.StartWeight != nil {
		fallback = *item.StartWeight
	}
	return SuggestNextWeight(history, item.RepMin, item.RepMax, item.Increment, fallback), nil
}

// SuggestForExercise finds the template item prescribing the exercise
// and computes its progression suggestion. Returns ErrExerciseNotFound
// when no template prescribes it.
func (p *Planner) SuggestForExercise(ctx context.Context, userID string, exerciseID int) (_ Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.planner.suggest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	templates, err := p.templates.ListTemplates(ctx)
	if err != nil {
		return Suggestion{}, fmt.Errorf("list templates: %w", err)
	}

	for _, template := range templates {
		items, err := p.templates.ListTemplateItems(ctx, template.ID)
		if err != nil {
			return Suggestion{}, fmt.Errorf("list template items: %w", err)
		}
		for _, item := range items {
			if item.Exercise.ID == exerciseID {
				return p.SuggestForItem(ctx, userID, item)
			}
		}
	}

	return Suggestion{}, ErrExerciseNotFound
}

// UserStreaks computes the workout and diet streaks. The two underlying
// fetches are independent and run concurrently; results are merged here.
func (p *Planner) UserStreaks(ctx context.Context, userID string) (_ *Streaks, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.planner.streaks")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var (
		wg                       sync.WaitGroup
		workoutDays, dietDays    []calendar.Date
		workoutDaysErr, dietsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		workoutDays, workoutDaysErr = p.sessions.ListSessionDays(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		dietDays, dietsErr = p.dietDays.DietLogDays(ctx, userID)
	}()
	wg.Wait()

	if workoutDaysErr != nil {
		return nil, fmt.Errorf("list session days: %w", workoutDaysErr)
	}
	if dietsErr != nil {
		return nil, fmt.Errorf("list diet log days: %w", dietsErr)
	}

	today := calendar.DateOf(p.now(), p.location)
	return &Streaks{
		Workout: ConsecutiveDays(workoutDays, today),
		Diet:    ConsecutiveDays(dietDays, today),
	}, nil
}
