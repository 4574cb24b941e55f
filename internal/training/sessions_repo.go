package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/backend/internal/calendar"
	"github.com/liftlogapp/backend/internal/telemetry/tracing"
	"github.com/liftlogapp/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// SessionsRepo persists workout sessions and their per-exercise records.
// The "per user per local day" key is enforced by looking sessions up by
// the civil date's boundaries in the configured timezone.
type SessionsRepo struct {
	db       *pgxpool.Pool
	location *time.Location
}

func NewSessionsRepo(db *pgxpool.Pool, location *time.Location) *SessionsRepo {
	return &SessionsRepo{
		db:       db,
		location: location,
	}
}

const sessionSelect = `
	SELECT
		s.id, s.user_id, s.template_id, t.cycle_position,
		s.started_at, s.ended_at, s.bodyweight, COALESCE(s.notes, '')
	FROM workout_session s
		JOIN workout_template t ON t.id = s.template_id`

func (r *SessionsRepo) GetSession(ctx context.Context, id int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, sessionSelect+` WHERE s.id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	return &sessions[0], nil
}

// GetOpenSession finds the user's open session for the given local
// calendar day, if one exists. Returns ErrSessionNotFound otherwise.
func (r *SessionsRepo) GetOpenSession(ctx context.Context, userID string, day calendar.Date) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getOpen")
	span.SetAttributes(attribute.String("day", day.String()))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dayStart := day.In(r.location)
	dayEnd := day.AddDays(1).In(r.location)

	rows, err := r.db.Query(
		ctx,
		sessionSelect+`
			WHERE s.user_id = $1
				AND s.ended_at IS NULL
				AND s.started_at >= $2 AND s.started_at < $3
			ORDER BY s.started_at DESC
			LIMIT 1;`,
		userID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	return &sessions[0], nil
}

func (r *SessionsRepo) CreateSession(
	ctx context.Context, userID string, templateID int, startedAt time.Time, bodyweight *float64,
) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, template_id, started_at, bodyweight)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		userID, templateID, startedAt, bodyweight,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	return r.GetSession(ctx, id)
}

func (r *SessionsRepo) CloseSession(ctx context.Context, sessionID int, endedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.close")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET ended_at = $1 WHERE id = $2 AND ended_at IS NULL;`,
		endedAt, sessionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CreateExerciseRecords materializes one record per template item in a
// single transaction, so a session is never visible with a partial set
// of records.
func (r *SessionsRepo) CreateExerciseRecords(
	ctx context.Context, sessionID int, items []TemplateItem,
) (_ []SessionExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.createRecords")
	span.SetAttributes(attribute.Int("items", len(items)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	records := make([]SessionExerciseRecord, 0, len(items))
	for _, item := range items {
		record := SessionExerciseRecord{
			SessionID:      sessionID,
			TemplateItemID: item.ID,
			ExerciseID:     item.Exercise.ID,
		}
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_session_exercise (session_id, template_item_id, exercise_id)
				VALUES ($1, $2, $3)
			RETURNING id;`,
			sessionID, item.ID, item.Exercise.ID,
		).Scan(&record.ID)
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, fmt.Errorf("record for template item %d already materialized: %w", item.ID, err)
			}
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *SessionsRepo) GetExerciseRecords(ctx context.Context, sessionID int) (_ []SessionExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getRecords")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, session_id, template_item_id, exercise_id, is_completed, completed_at
			FROM workout_session_exercise
			WHERE session_id = $1
			ORDER BY id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2records(rows)
}

func (r *SessionsRepo) GetExerciseRecord(ctx context.Context, recordID int) (_ *SessionExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getRecord")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	record := &SessionExerciseRecord{}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				id, session_id, template_item_id, exercise_id, is_completed, completed_at
			FROM workout_session_exercise
			WHERE id = $1;`,
		recordID,
	).Scan(
		&record.ID, &record.SessionID, &record.TemplateItemID,
		&record.ExerciseID, &record.IsCompleted, &record.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *SessionsRepo) SetExerciseCompletion(
	ctx context.Context, recordID int, completed bool, completedAt *time.Time,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setCompletion")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session_exercise SET is_completed = $1, completed_at = $2 WHERE id = $3;`,
		completed, completedAt, recordID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *SessionsRepo) ListRecentSessions(ctx context.Context, userID string, limit int) (_ []SessionDigest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listRecent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				s.id, s.started_at, s.ended_at, t.cycle_position
			FROM workout_session s
				JOIN workout_template t ON t.id = s.template_id
			WHERE s.user_id = $1
			ORDER BY s.started_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	digests := make([]SessionDigest, 0)
	for rows.Next() {
		var d SessionDigest
		if err := rows.Scan(&d.ID, &d.StartedAt, &d.EndedAt, &d.CyclePosition); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		digests = append(digests, d)
	}
	return digests, nil
}

// ListSessionDays returns the local calendar days on which the user
// started any session, for streak computation.
func (r *SessionsRepo) ListSessionDays(ctx context.Context, userID string) (_ []calendar.Date, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listDays")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT started_at FROM workout_session WHERE user_id = $1 ORDER BY started_at DESC;`,
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
		var startedAt time.Time
		if err := rows.Scan(&startedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, calendar.DateOf(startedAt, r.location))
	}
	return days, nil
}

func (r *SessionsRepo) rows2sessions(rows pgx.Rows) ([]WorkoutSession, error) {
	var sessions []WorkoutSession
	for rows.Next() {
		var s WorkoutSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TemplateID, &s.CyclePosition,
			&s.StartedAt, &s.EndedAt, &s.Bodyweight, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}

	if sessions == nil {
		sessions = make([]WorkoutSession, 0)
	}

	return sessions, nil
}

func (r *SessionsRepo) rows2records(rows pgx.Rows) ([]SessionExerciseRecord, error) {
	var records []SessionExerciseRecord
	for rows.Next() {
		var rec SessionExerciseRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.TemplateItemID,
			&rec.ExerciseID, &rec.IsCompleted, &rec.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}

	if records == nil {
		records = make([]SessionExerciseRecord, 0)
	}

	return records, nil
}
