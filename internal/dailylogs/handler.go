package dailylogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
	"github.com/liftlogapp/backend/internal/middleware"
	"github.com/liftlogapp/backend/internal/telemetry/metrics"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"
	"github.com/liftlogapp/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dailylogs_test

type dailyLogsRepo interface {
	UpsertBodyweight(ctx context.Context, bwLog BodyweightLog) error
	UpsertDiet(ctx context.Context, dietLog DietLog) error
	GetBodyweight(ctx context.Context, userID string, day calendar.Date) (*BodyweightLog, error)
	GetDiet(ctx context.Context, userID string, day calendar.Date) (*DietLog, error)
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	UpsertProfile(ctx context.Context, profile UserProfile) error
	GetStats(ctx context.Context, userID string) (*Stats, error)
}

type Handler struct {
	repo     dailyLogsRepo
	metrics  *metrics.Manager
	location *time.Location
}

func NewHandler(repo dailyLogsRepo, metricsManager *metrics.Manager, location *time.Location) *Handler {
	return &Handler{
		repo:     repo,
		metrics:  metricsManager,
		location: location,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	logsRouter := router.PathPrefix("/dailylogs").Subrouter()
	logsRouter.HandleFunc("/bodyweight", handler.HandleGetBodyweight).Methods("GET", "OPTIONS").Name("get-bodyweight")
	logsRouter.HandleFunc("/bodyweight", handler.HandleUpsertBodyweight).Methods("PUT", "OPTIONS").Name("upsert-bodyweight")
	logsRouter.HandleFunc("/diet", handler.HandleGetDiet).Methods("GET", "OPTIONS").Name("get-diet")
	logsRouter.HandleFunc("/diet", handler.HandleUpsertDiet).Methods("PUT", "OPTIONS").Name("upsert-diet")
	logsRouter.HandleFunc("/profile", handler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	logsRouter.HandleFunc("/profile", handler.HandleUpsertProfile).Methods("PUT", "OPTIONS").Name("upsert-profile")
	logsRouter.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
}

type UpsertBodyweightRequest struct {
	Weight  float64  `json:"weight"`
	WaistCm *float64 `json:"waistCm,omitempty"`
}

func (handler *Handler) HandleUpsertBodyweight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.upsertBodyweight")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpsertBodyweightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert bodyweight, unmarshal json params: %s", err)
		http.Error(w, "upsert bodyweight failed", http.StatusBadRequest)
		return
	}

	if req.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	err := handler.repo.UpsertBodyweight(ctx, BodyweightLog{
		UserID:  userID,
		Day:     calendar.Today(handler.location),
		Weight:  req.Weight,
		WaistCm: req.WaistCm,
	})
	if err != nil {
		log.Errorf("failed to upsert bodyweight for user %s: %s", userID, err)
		http.Error(w, "upsert bodyweight failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDailyLogUpserts.Inc()
	pkg.WriteTextResponseOK(w, "saved")
}

func (handler *Handler) HandleGetBodyweight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.getBodyweight")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	bwLog, err := handler.repo.GetBodyweight(ctx, userID, calendar.Today(handler.location))
	if err != nil {
		log.Errorf("failed to get bodyweight for user %s: %s", userID, err)
		http.Error(w, "get bodyweight failed", http.StatusInternalServerError)
		return
	}
	if bwLog == nil {
		http.Error(w, "error, no bodyweight logged today", http.StatusNotFound)
		return
	}

	logJson, err := json.Marshal(bwLog)
	if err != nil {
		log.Errorf("failed to marshal bodyweight log: %s", err)
		http.Error(w, "get bodyweight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson)
}

type UpsertDietRequest struct {
	ProteinG int `json:"proteinG"`
	Calories int `json:"calories"`
	Steps    int `json:"steps"`
}

func (handler *Handler) HandleUpsertDiet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.upsertDiet")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpsertDietRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert diet, unmarshal json params: %s", err)
		http.Error(w, "upsert diet failed", http.StatusBadRequest)
		return
	}

	if req.ProteinG < 0 || req.Calories < 0 || req.Steps < 0 {
		http.Error(w, "error, negative diet values", http.StatusBadRequest)
		return
	}

	err := handler.repo.UpsertDiet(ctx, DietLog{
		UserID:   userID,
		Day:      calendar.Today(handler.location),
		ProteinG: req.ProteinG,
		Calories: req.Calories,
		Steps:    req.Steps,
	})
	if err != nil {
		log.Errorf("failed to upsert diet for user %s: %s", userID, err)
		http.Error(w, "upsert diet failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDailyLogUpserts.Inc()
	pkg.WriteTextResponseOK(w, "saved")
}

func (handler *Handler) HandleGetDiet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.getDiet")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dietLog, err := handler.repo.GetDiet(ctx, userID, calendar.Today(handler.location))
	if err != nil {
		log.Errorf("failed to get diet log for user %s: %s", userID, err)
		http.Error(w, "get diet failed", http.StatusInternalServerError)
		return
	}
	if dietLog == nil {
		http.Error(w, "error, no diet logged today", http.StatusNotFound)
		return
	}

	logJson, err := json.Marshal(dietLog)
	if err != nil {
		log.Errorf("failed to marshal diet log: %s", err)
		http.Error(w, "get diet failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.getProfile")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := handler.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "error, profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile for user %s: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson)
}

type UpsertProfileRequest struct {
	StartingWeight float64       `json:"startingWeight"`
	StartingDate   calendar.Date `json:"startingDate"`
	GoalWeight     *float64      `json:"goalWeight,omitempty"`
}

func (handler *Handler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.upsertProfile")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert profile, unmarshal json params: %s", err)
		http.Error(w, "upsert profile failed", http.StatusBadRequest)
		return
	}

	if req.StartingWeight <= 0 {
		http.Error(w, "error, starting weight must be positive", http.StatusBadRequest)
		return
	}
	if req.StartingDate.IsZero() {
		req.StartingDate = calendar.Today(handler.location)
	}

	err := handler.repo.UpsertProfile(ctx, UserProfile{
		UserID:         userID,
		StartingWeight: req.StartingWeight,
		StartingDate:   req.StartingDate,
		GoalWeight:     req.GoalWeight,
	})
	if err != nil {
		log.Errorf("failed to upsert profile for user %s: %s", userID, err)
		http.Error(w, "upsert profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "saved")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylogs.stats")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.repo.GetStats(ctx, userID)
	if err != nil {
		log.Errorf("failed to get stats for user %s: %s", userID, err)
		http.Error(w, "get stats failed", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats: %s", err)
		http.Error(w, "get stats failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson)
}
