package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// SetsRepo persists logged sets and serves the per-exercise history the
// progression rules consume.
type SetsRepo struct {
	db *pgxpool.Pool
}

func NewSetsRepo(db *pgxpool.Pool) *SetsRepo {
	return &SetsRepo{
		db: db,
	}
}

func (r *SetsRepo) GetSet(ctx context.Context, setID int) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	set := &WorkoutSet{}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				id, session_id, exercise_id, set_number, weight, reps, rir, is_warmup, created_at
			FROM workout_set
			WHERE id = $1;`,
		setID,
	).Scan(
		&set.ID, &set.SessionID, &set.ExerciseID, &set.SetNumber,
		&set.Weight, &set.Reps, &set.RIR, &set.IsWarmup, &set.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return set, nil
}

func (r *SetsRepo) InsertSet(ctx context.Context, set WorkoutSet) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(session_id, exercise_id, set_number, weight, reps, rir, is_warmup, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		set.SessionID, set.ExerciseID, set.SetNumber,
		set.Weight, set.Reps, set.RIR, set.IsWarmup, set.CreatedAt,
	).Scan(&set.ID)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *SetsRepo) UpdateSet(ctx context.Context, set *WorkoutSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_set SET weight = $1, reps = $2, rir = $3, is_warmup = $4 WHERE id = $5;`,
		set.Weight, set.Reps, set.RIR, set.IsWarmup, set.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// ListWorkingSets returns one session's non-warm-up sets for one
// exercise, ordered by set number.
func (r *SetsRepo) ListWorkingSets(ctx context.Context, sessionID, exerciseID int) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listWorking")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, session_id, exercise_id, set_number, weight, reps, rir, is_warmup, created_at
			FROM workout_set
			WHERE session_id = $1 AND exercise_id = $2 AND is_warmup = FALSE
			ORDER BY set_number;`,
		sessionID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2sets(rows)
}

// ExerciseHistory returns the user's working sets for one exercise from
// their most recent completed sessions, grouped per session and ordered
// most-recent-first. Warm-up sets are excluded here so the progression
// rules never see them.
func (r *SetsRepo) ExerciseHistory(
	ctx context.Context, userID string, exerciseID int, sessionsLimit int,
) (_ []SessionSets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.history")
	span.SetAttributes(attribute.Int("exerciseId", exerciseID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				ws.id, ws.session_id, ws.exercise_id, ws.set_number,
				ws.weight, ws.reps, ws.rir, ws.is_warmup, ws.created_at,
				s.started_at
			FROM workout_set ws
				JOIN workout_session s ON s.id = ws.session_id
			WHERE ws.session_id IN (
					SELECT DISTINCT wsi.session_id FROM workout_set wsi
						JOIN workout_session si ON si.id = wsi.session_id
					WHERE si.user_id = $1
						AND wsi.exercise_id = $2
						AND si.ended_at IS NOT NULL
					ORDER BY wsi.session_id DESC
					LIMIT $3
				)
				AND ws.exercise_id = $2
				AND ws.is_warmup = FALSE
			ORDER BY s.started_at DESC, ws.set_number;`,
		userID, exerciseID, sessionsLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	history := make([]SessionSets, 0)
	for rows.Next() {
		var set WorkoutSet
		var startedAt time.Time
		if err := rows.Scan(
			&set.ID, &set.SessionID, &set.ExerciseID, &set.SetNumber,
			&set.Weight, &set.Reps, &set.RIR, &set.IsWarmup, &set.CreatedAt,
			&startedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if len(history) == 0 || history[len(history)-1].SessionID != set.SessionID {
			history = append(history, SessionSets{
				SessionID: set.SessionID,
				StartedAt: startedAt,
			})
		}
		last := &history[len(history)-1]
		last.Sets = append(last.Sets, set)
	}

	return history, nil
}

func (r *SetsRepo) rows2sets(rows pgx.Rows) ([]WorkoutSet, error) {
	var sets []WorkoutSet
	for rows.Next() {
		var set WorkoutSet
		if err := rows.Scan(
			&set.ID, &set.SessionID, &set.ExerciseID, &set.SetNumber,
			&set.Weight, &set.Reps, &set.RIR, &set.IsWarmup, &set.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, set)
	}

	if sets == nil {
		sets = make([]WorkoutSet, 0)
	}

	return sets, nil
}
