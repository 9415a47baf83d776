package schedule

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamplan/team-calendar-backend/internal/database"
)

func (*Repository) DeleteSimpleSchedule(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.SimpleSchedulesTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteRepeatSchedule(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.RepeatSchedulesTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
