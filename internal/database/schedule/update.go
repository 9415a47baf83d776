package schedule

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) UpdateSimpleSchedule(ctx context.Context, q database.Queryable, schedule *model.SimpleSchedule) error {
	qb := database.PSQL.
		Update(database.SimpleSchedulesTable).
		SetMap(map[string]interface{}{
			"category_id": schedule.CategoryID,
			"title":       schedule.Title,
			"content":     schedule.Content,
			"place":       schedule.Place,
			"start_dt":    schedule.StartDt,
			"end_dt":      schedule.EndDt,
			"color":       schedule.Color,
			"converted":   schedule.Converted,
		}).
		Where(sq.Eq{"id": schedule.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// UpdateRepeatSchedule rewrites the row guarded by its version; a guard miss
// means another edit won the race and surfaces as model.ErrConflict.
func (*Repository) UpdateRepeatSchedule(ctx context.Context, q database.Queryable, schedule *model.RepeatSchedule) error {
	dayOfWeek, day, month := recurrenceColumns(schedule.Recurrence)

	qb := database.PSQL.
		Update(database.RepeatSchedulesTable).
		SetMap(map[string]interface{}{
			"category_id":  schedule.CategoryID,
			"title":        schedule.Title,
			"content":      schedule.Content,
			"place":        schedule.Place,
			"start_dt":     schedule.StartDt,
			"end_dt":       schedule.EndDt,
			"color":        schedule.Color,
			"repeat_cycle": int(schedule.Recurrence.Cycle),
			"day_of_week":  dayOfWeek,
			"day":          day,
			"month":        month,
			"version":      schedule.Version + 1,
		}).
		Where(sq.Eq{"id": schedule.ID, "version": schedule.Version})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrConflict
	}

	return nil
}

// SetOrigin points a freshly created series root at itself.
func (*Repository) SetOrigin(ctx context.Context, q database.Queryable, scheduleID, originID int64) error {
	qb := database.PSQL.
		Update(database.RepeatSchedulesTable).
		Set("origin_repeat_schedule_id", originID).
		Where(sq.Eq{"id": scheduleID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
