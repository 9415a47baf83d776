package schedule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) GetSimpleScheduleByID(ctx context.Context, q database.Queryable, id int64) (*model.SimpleSchedule, error) {
	qb := simpleBaseQuery.
		Where(sq.Eq{"s.id": id})

	dto := &simpleScheduleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToSimpleSchedule(dto), nil
}

func (*Repository) GetRepeatScheduleByID(ctx context.Context, q database.Queryable, id int64) (*model.RepeatSchedule, error) {
	qb := repeatBaseQuery.
		Where(sq.Eq{"r.id": id})

	dto := &repeatScheduleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRepeatSchedule(dto), nil
}

// GetRepeatScheduleByOrigin returns the series root: the row whose origin id
// matches the given schedule id.
func (*Repository) GetRepeatScheduleByOrigin(ctx context.Context, q database.Queryable, originID int64) (*model.RepeatSchedule, error) {
	qb := repeatBaseQuery.
		Where(sq.Eq{"r.origin_repeat_schedule_id": originID}).
		OrderBy("r.id").
		Limit(1)

	dto := &repeatScheduleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRepeatSchedule(dto), nil
}

func (*Repository) GetSimpleSchedules(ctx context.Context, q database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.SimpleSchedule, error) {
	qb := simpleBaseQuery.
		Where(sq.Eq{"s.team_id": teamID}).
		OrderBy("s.id")

	if categoryType != nil {
		qb = qb.
			Join(database.CategoriesTable + " c on c.id = s.category_id").
			Where(sq.Eq{"c.category_type": int(*categoryType)})
	}

	var dtos []*simpleScheduleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.SimpleSchedule, len(dtos))
	for i, d := range dtos {
		res[i] = mapToSimpleSchedule(d)
	}

	return res, nil
}

func (*Repository) GetRepeatSchedules(ctx context.Context, q database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.RepeatSchedule, error) {
	qb := repeatBaseQuery.
		Where(sq.Eq{"r.team_id": teamID}).
		OrderBy("r.id")

	if categoryType != nil {
		qb = qb.
			Join(database.CategoriesTable + " c on c.id = r.category_id").
			Where(sq.Eq{"c.category_type": int(*categoryType)})
	}

	var dtos []*repeatScheduleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.RepeatSchedule, len(dtos))
	for i, d := range dtos {
		res[i] = mapToRepeatSchedule(d)
	}

	return res, nil
}
