package schedule

import (
	"context"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) CreateSimpleSchedule(ctx context.Context, q database.Queryable, schedule *model.SimpleSchedule) (int64, error) {
	qb := database.PSQL.
		Insert(database.SimpleSchedulesTable).
		Columns(
			"team_id",
			"category_id",
			"title",
			"content",
			"place",
			"start_dt",
			"end_dt",
			"color",
			"create_participant_id",
			"converted",
		).
		Values(
			schedule.TeamID,
			schedule.CategoryID,
			schedule.Title,
			schedule.Content,
			schedule.Place,
			schedule.StartDt,
			schedule.EndDt,
			schedule.Color,
			schedule.CreateParticipantID,
			schedule.Converted,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) CreateRepeatSchedule(ctx context.Context, q database.Queryable, schedule *model.RepeatSchedule) (int64, error) {
	dayOfWeek, day, month := recurrenceColumns(schedule.Recurrence)

	qb := database.PSQL.
		Insert(database.RepeatSchedulesTable).
		Columns(
			"team_id",
			"category_id",
			"title",
			"content",
			"place",
			"start_dt",
			"end_dt",
			"color",
			"create_participant_id",
			"repeat_cycle",
			"day_of_week",
			"day",
			"month",
			"origin_repeat_schedule_id",
		).
		Values(
			schedule.TeamID,
			schedule.CategoryID,
			schedule.Title,
			schedule.Content,
			schedule.Place,
			schedule.StartDt,
			schedule.EndDt,
			schedule.Color,
			schedule.CreateParticipantID,
			int(schedule.Recurrence.Cycle),
			dayOfWeek,
			day,
			month,
			schedule.OriginRepeatScheduleID,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
