package dailylogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("user profile not found")

// Repo persists the per-day bodyweight and diet logs plus the user
// profile. Daily logs are upserted on (user_id, day): logging twice on
// one local calendar day overwrites, never duplicates.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertBodyweight(ctx context.Context, bwLog BodyweightLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.upsertBodyweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO bodyweight_log (user_id, day, weight, waist_cm)
			VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day)
			DO UPDATE SET weight = EXCLUDED.weight, waist_cm = EXCLUDED.waist_cm;`,
		bwLog.UserID, bwLog.Day.String(), bwLog.Weight, bwLog.WaistCm,
	)
	return err
}

func (r *Repo) UpsertDiet(ctx context.Context, dietLog DietLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.upsertDiet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO diet_log (user_id, day, protein_g, calories, steps)
			VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day)
			DO UPDATE SET protein_g = EXCLUDED.protein_g, calories = EXCLUDED.calories, steps = EXCLUDED.steps;`,
		dietLog.UserID, dietLog.Day.String(), dietLog.ProteinG, dietLog.Calories, dietLog.Steps,
	)
	return err
}

func (r *Repo) GetBodyweight(ctx context.Context, userID string, day calendar.Date) (_ *BodyweightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.getBodyweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	bwLog := &BodyweightLog{}
	var dbDay time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, day, weight, waist_cm FROM bodyweight_log WHERE user_id = $1 AND day = $2;`,
		userID, day.String(),
	).Scan(&bwLog.UserID, &dbDay, &bwLog.Weight, &bwLog.WaistCm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	bwLog.Day = calendar.DateOf(dbDay, time.UTC)
	return bwLog, nil
}

func (r *Repo) GetDiet(ctx context.Context, userID string, day calendar.Date) (_ *DietLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.getDiet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dietLog := &DietLog{}
	var dbDay time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, day, protein_g, calories, steps FROM diet_log WHERE user_id = $1 AND day = $2;`,
		userID, day.String(),
	).Scan(&dietLog.UserID, &dbDay, &dietLog.ProteinG, &dietLog.Calories, &dietLog.Steps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	dietLog.Day = calendar.DateOf(dbDay, time.UTC)
	return dietLog, nil
}

// DietLogDays lists the local calendar days the user logged diet data,
// most recent first, for streak computation.
func (r *Repo) DietLogDays(ctx context.Context, userID string) (_ []calendar.Date, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.dietDays")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT day FROM diet_log WHERE user_id = $1 ORDER BY day DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	days := make([]calendar.Date, 0)
	for rows.Next() {
		var dbDay time.Time
		if err := rows.Scan(&dbDay); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, calendar.DateOf(dbDay, time.UTC))
	}
	return days, nil
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.getProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	profile := &UserProfile{}
	var startingDate time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, starting_weight, starting_date, goal_weight FROM user_profile WHERE user_id = $1;`,
		userID,
	).Scan(&profile.UserID, &profile.StartingWeight, &startingDate, &profile.GoalWeight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	profile.StartingDate = calendar.DateOf(startingDate, time.UTC)
	return profile, nil
}

func (r *Repo) UpsertProfile(ctx context.Context, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.upsertProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile (user_id, starting_weight, starting_date, goal_weight)
			VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
			DO UPDATE SET starting_weight = EXCLUDED.starting_weight,
				starting_date = EXCLUDED.starting_date,
				goal_weight = EXCLUDED.goal_weight;`,
		profile.UserID, profile.StartingWeight, profile.StartingDate.String(), profile.GoalWeight,
	)
	return err
}

// GetStats computes the all-time totals in one round trip.
func (r *Repo) GetStats(ctx context.Context, userID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylogs.stats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	stats := &Stats{}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				(SELECT COUNT(DISTINCT DATE(started_at)) FROM workout_session WHERE user_id = $1),
				(SELECT COUNT(*) FROM workout_session WHERE user_id = $1),
				(SELECT COUNT(*) FROM workout_set ws
					JOIN workout_session s ON s.id = ws.session_id
					WHERE s.user_id = $1),
				(SELECT COUNT(*) FROM diet_log WHERE user_id = $1),
				(SELECT COALESCE(SUM(protein_g), 0) FROM diet_log WHERE user_id = $1),
				(SELECT COALESCE(SUM(calories), 0) FROM diet_log WHERE user_id = $1);`,
		userID,
	).Scan(
		&stats.WorkoutDays, &stats.TotalSessions, &stats.TotalSets,
		&stats.DietDays, &stats.TotalProteinG, &stats.TotalCalories,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
