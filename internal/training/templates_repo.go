package training

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liftlogapp/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour = 60 * 60
	// templates and items are immutable reference data, an hour of
	// staleness only matters after a redeploy with new seed data
	refDataCacheExpire = oneHour
)

// TemplatesRepo reads the immutable workout reference data: the two
// alternating templates and their exercise items. Reads go through an
// in-process cache since this data is hit on every plan request.
type TemplatesRepo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewTemplatesRepo(db *pgxpool.Pool) *TemplatesRepo {
	megabyte := 1024 * 1024
	return &TemplatesRepo{
		db:    db,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (r *TemplatesRepo) ListTemplates(ctx context.Context) (_ []WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cacheKey := []byte("workout-templates")
	if cachedBytes, err := r.cache.Get(cacheKey); err == nil {
		var templates []WorkoutTemplate
		if err = json.Unmarshal(cachedBytes, &templates); err == nil {
			return templates, nil
		}
		log.Errorf("failed to unmarshal cached templates: %s", err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, cycle_position, COALESCE(description, '')
			FROM workout_template
			ORDER BY cycle_position;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]WorkoutTemplate, 0, 2)
	for rows.Next() {
		var t WorkoutTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.CyclePosition, &t.Description); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		templates = append(templates, t)
	}

	if templatesBytes, err := json.Marshal(templates); err == nil {
		if err := r.cache.Set(cacheKey, templatesBytes, refDataCacheExpire); err != nil {
			log.Errorf("failed to cache templates: %s", err)
		}
	}

	return templates, nil
}

func (r *TemplatesRepo) ListTemplateItems(ctx context.Context, templateID int) (_ []TemplateItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.items")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cacheKey := []byte(fmt.Sprintf("template-items::%d", templateID))
	if cachedBytes, err := r.cache.Get(cacheKey); err == nil {
		var items []TemplateItem
		if err = json.Unmarshal(cachedBytes, &items); err == nil {
			return items, nil
		}
		log.Errorf("failed to unmarshal cached template items: %s", err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				ti.id, ti.template_id, ti.sort_order, ti.target_sets,
				ti.rep_min, ti.rep_max, ti.rest_seconds, ti.start_weight,
				ti.increment, COALESCE(ti.notes, ''),
				e.id, e.name, e.category, e.equipment,
				COALESCE(e.demo_url, ''), COALESCE(e.form_notes, '')
			FROM workout_template_item ti
				JOIN exercise e ON e.id = ti.exercise_id
			WHERE ti.template_id = $1
			ORDER BY ti.sort_order;`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.rows2templateItems(rows)
	if err != nil {
		return nil, err
	}

	if itemsBytes, err := json.Marshal(items); err == nil {
		if err := r.cache.Set(cacheKey, itemsBytes, refDataCacheExpire); err != nil {
			log.Errorf("failed to cache template %d items: %s", templateID, err)
		}
	}

	return items, nil
}

func (r *TemplatesRepo) rows2templateItems(rows pgx.Rows) ([]TemplateItem, error) {
	var items []TemplateItem
	for rows.Next() {
		var item TemplateItem
		if err := rows.Scan(
			&item.ID, &item.TemplateID, &item.SortOrder, &item.TargetSets,
			&item.RepMin, &item.RepMax, &item.RestSeconds, &item.StartWeight,
			&item.Increment, &item.Notes,
			&item.Exercise.ID, &item.Exercise.Name, &item.Exercise.Category,
			&item.Exercise.Equipment, &item.Exercise.DemoURL, &item.Exercise.FormNotes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, item)
	}

	if items == nil {
		items = make([]TemplateItem, 0)
	}

	return items, nil
}
