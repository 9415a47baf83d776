package schedule

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamplan/team-calendar-backend/internal/database"
)

// Assignment rows reference exactly one of the two schedule kinds.

func (*Repository) AssignParticipantsToSimple(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error {
	if len(participantsIDs) == 0 {
		return nil
	}

	qb := database.PSQL.
		Insert(database.ParticipantSchedulesTable).
		Columns("team_participant_id", "simple_schedule_id")

	for _, id := range participantsIDs {
		qb = qb.Values(id, scheduleID)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) AssignParticipantsToRepeat(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error {
	if len(participantsIDs) == 0 {
		return nil
	}

	qb := database.PSQL.
		Insert(database.ParticipantSchedulesTable).
		Columns("team_participant_id", "repeat_schedule_id")

	for _, id := range participantsIDs {
		qb = qb.Values(id, scheduleID)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteAssignmentsBySimple(ctx context.Context, q database.Queryable, scheduleID int64) error {
	return deleteAssignments(ctx, q, sq.Eq{"simple_schedule_id": scheduleID})
}

func (*Repository) DeleteAssignmentsByRepeat(ctx context.Context, q database.Queryable, scheduleID int64) error {
	return deleteAssignments(ctx, q, sq.Eq{"repeat_schedule_id": scheduleID})
}

func deleteAssignments(ctx context.Context, q database.Queryable, predicate interface{}) error {
	qb := database.PSQL.
		Delete(database.ParticipantSchedulesTable).
		Where(predicate)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) GetAssignedParticipantsIDsBySimple(ctx context.Context, q database.Queryable, scheduleID int64) ([]int64, error) {
	return getAssignedParticipantsIDs(ctx, q, sq.Eq{"simple_schedule_id": scheduleID})
}

func (*Repository) GetAssignedParticipantsIDsByRepeat(ctx context.Context, q database.Queryable, scheduleID int64) ([]int64, error) {
	return getAssignedParticipantsIDs(ctx, q, sq.Eq{"repeat_schedule_id": scheduleID})
}

func getAssignedParticipantsIDs(ctx context.Context, q database.Queryable, predicate interface{}) ([]int64, error) {
	qb := database.PSQL.
		Select("team_participant_id").
		From(database.ParticipantSchedulesTable).
		Where(predicate).
		OrderBy("id")

	var ids []int64
	if err := q.Select(ctx, &ids, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return ids, nil
}
