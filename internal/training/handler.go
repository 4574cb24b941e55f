package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/liftlogapp/backend/internal/middleware"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"
	"github.com/liftlogapp/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type sessionLifecycle interface {
	StartSession(ctx context.Context, userID string, templateID int, bodyweight *float64) (*SessionState, bool, error)
	GetSessionState(ctx context.Context, sessionID int) (*SessionState, error)
	SetExerciseCompletion(ctx context.Context, recordID int, completed bool) error
	FinishSession(ctx context.Context, sessionID int) error
	LogSet(ctx context.Context, set WorkoutSet) (*WorkoutSet, error)
	CorrectSet(ctx context.Context, setID int, weight float64, reps int, rir *int, warmup bool) error
}

type todayPlanner interface {
	Today(ctx context.Context, userID string) (*TodayPlan, error)
	SuggestForExercise(ctx context.Context, userID string, exerciseID int) (Suggestion, error)
	UserStreaks(ctx context.Context, userID string) (*Streaks, error)
}

type Handler struct {
	lifecycle sessionLifecycle
	planner   todayPlanner
}

func NewHandler(lifecycle sessionLifecycle, planner todayPlanner) *Handler {
	return &Handler{
		lifecycle: lifecycle,
		planner:   planner,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	trainingRouter := router.PathPrefix("/training").Subrouter()
	trainingRouter.HandleFunc("/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("training-today")
	trainingRouter.HandleFunc("/streaks", handler.HandleStreaks).Methods("GET", "OPTIONS").Name("training-streaks")
	trainingRouter.HandleFunc("/sessions", handler.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	trainingRouter.HandleFunc("/sessions/{id}/finish", handler.HandleFinishSession).Methods("POST", "OPTIONS").Name("finish-session")
	trainingRouter.HandleFunc("/sessions/exercises/{id}", handler.HandleSetCompletion).Methods("PUT", "OPTIONS").Name("toggle-exercise")
	trainingRouter.HandleFunc("/sets", handler.HandleLogSet).Methods("POST", "OPTIONS").Name("log-set")
	trainingRouter.HandleFunc("/sets/{id}", handler.HandleCorrectSet).Methods("PUT", "OPTIONS").Name("correct-set")
	trainingRouter.HandleFunc("/exercises/{id}/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("progression")
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.today")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plan, err := handler.planner.Today(ctx, userID)
	if err != nil {
		log.Errorf("failed to get today plan for user %s: %s", userID, err)
		http.Error(w, "error, failed to get today plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal today plan: %s", err)
		http.Error(w, "error, failed to get today plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.streaks")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	streaks, err := handler.planner.UserStreaks(ctx, userID)
	if err != nil {
		log.Errorf("failed to get streaks for user %s: %s", userID, err)
		http.Error(w, "error, failed to get streaks", http.StatusInternalServerError)
		return
	}

	streaksJson, err := json.Marshal(streaks)
	if err != nil {
		log.Errorf("failed to marshal streaks: %s", err)
		http.Error(w, "error, failed to get streaks", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streaksJson)
}

type StartSessionRequest struct {
	TemplateID int      `json:"templateId,omitempty"`
	Bodyweight *float64 `json:"bodyweight,omitempty"`
}

type StartSessionResponse struct {
	SessionState
	Created bool `json:"created"`
}

func (handler *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.startSession")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}

	// template not chosen by the client: serve the one the cadence
	// alternation picks
	if req.TemplateID == 0 {
		plan, err := handler.planner.Today(ctx, userID)
		if err != nil {
			log.Errorf("failed to get today plan for user %s: %s", userID, err)
			http.Error(w, "start session failed", http.StatusInternalServerError)
			return
		}
		if plan.Template == nil {
			http.Error(w, "error, no workout templates configured", http.StatusBadRequest)
			return
		}
		req.TemplateID = plan.Template.ID
	}

	state, created, err := handler.lifecycle.StartSession(ctx, userID, req.TemplateID, req.Bodyweight)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "error, workout template not found", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to start session for user %s: %s", userID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(StartSessionResponse{
		SessionState: *state,
		Created:      created,
	})
	if err != nil {
		log.Errorf("failed to marshal session state: %s", err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}

func (handler *Handler) HandleFinishSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.finishSession")
	defer span.End()

	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.lifecycle.FinishSession(ctx, sessionID); err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "error, session not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionClosed):
			http.Error(w, "error, session already closed", http.StatusConflict)
		default:
			log.Errorf("failed to finish session %d: %s", sessionID, err)
			http.Error(w, "finish session failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "finished")
}

type SetCompletionRequest struct {
	Completed bool `json:"completed"`
}

func (handler *Handler) HandleSetCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.setCompletion")
	defer span.End()

	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	recordID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req SetCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set completion, unmarshal json params: %s", err)
		http.Error(w, "set completion failed", http.StatusBadRequest)
		return
	}

	if err := handler.lifecycle.SetExerciseCompletion(ctx, recordID, req.Completed); err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, "error, record not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionClosed):
			http.Error(w, "error, session already closed", http.StatusConflict)
		default:
			log.Errorf("failed to set completion for record %d: %s", recordID, err)
			http.Error(w, "set completion failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logSet")
	defer span.End()

	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var set WorkoutSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}

	if set.SessionID == 0 || set.ExerciseID == 0 {
		http.Error(w, "error, session id or exercise id empty", http.StatusBadRequest)
		return
	}
	if set.Reps < 0 || set.Weight < 0 || (set.RIR != nil && *set.RIR < 0) {
		http.Error(w, "error, negative set values", http.StatusBadRequest)
		return
	}

	added, err := handler.lifecycle.LogSet(ctx, set)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "error, session not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionClosed):
			http.Error(w, "error, session already closed", http.StatusConflict)
		default:
			log.Errorf("failed to log set for session %d: %s", set.SessionID, err)
			http.Error(w, "log set failed", http.StatusInternalServerError)
		}
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal logged set: %s", err)
		http.Error(w, "log set failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

type CorrectSetRequest struct {
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	RIR      *int    `json:"rir,omitempty"`
	IsWarmup bool    `json:"isWarmup"`
}

func (handler *Handler) HandleCorrectSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.correctSet")
	defer span.End()

	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	setID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req CorrectSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("correct set, unmarshal json params: %s", err)
		http.Error(w, "correct set failed", http.StatusBadRequest)
		return
	}

	if req.Reps < 0 || req.Weight < 0 || (req.RIR != nil && *req.RIR < 0) {
		http.Error(w, "error, negative set values", http.StatusBadRequest)
		return
	}

	err := handler.lifecycle.CorrectSet(ctx, setID, req.Weight, req.Reps, req.RIR, req.IsWarmup)
	if err != nil {
		switch {
		case errors.Is(err, ErrSetNotFound):
			http.Error(w, "error, set not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionClosed):
			http.Error(w, "error, session already closed", http.StatusConflict)
		default:
			log.Errorf("failed to correct set %d: %s", setID, err)
			http.Error(w, "correct set failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.progression")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, ok := pathID(w, r)
	if !ok {
		return
	}

	suggestion, err := handler.planner.SuggestForExercise(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progression for exercise %d: %s", exerciseID, err)
		http.Error(w, "error, failed to get progression", http.StatusInternalServerError)
		return
	}

	suggestionJson, err := json.Marshal(suggestion)
	if err != nil {
		log.Errorf("failed to marshal suggestion: %s", err)
		http.Error(w, "error, failed to get progression", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionJson)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
