package schedule

import (
	"context"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (s *Service) CreateSimpleSchedule(ctx context.Context, info *model.ScheduleCreate, memberID int64) (*model.SimpleSchedule, error) {
	if _, err := s.resolveParticipant(ctx, s.db, info.TeamID, memberID); err != nil {
		return nil, err
	}

	team, err := s.resolveTeam(ctx, s.db, info.TeamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveCategory(ctx, s.db, info.CategoryID); err != nil {
		return nil, err
	}

	if err := s.validateAssignees(ctx, s.db, team.ID, info.ParticipantsIDs); err != nil {
		return nil, err
	}

	schedule := &model.SimpleSchedule{ScheduleCreate: *info}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.schedules.CreateSimpleSchedule(ctx, tx, schedule)
	if err != nil {
		return nil, fmt.Errorf("schedules.CreateSimpleSchedule: %w", err)
	}

	if err := s.schedules.AssignParticipantsToSimple(ctx, tx, id, info.ParticipantsIDs); err != nil {
		return nil, fmt.Errorf("schedules.AssignParticipantsToSimple: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	schedule.ID = id
	s.logger.Infow("simple schedule saved", "id", id, "team_id", team.ID)
	return schedule, nil
}

func (s *Service) CreateRepeatSchedule(ctx context.Context, info *model.RepeatScheduleCreate, memberID int64) (*model.RepeatSchedule, error) {
	if _, err := s.resolveParticipant(ctx, s.db, info.TeamID, memberID); err != nil {
		return nil, err
	}

	team, err := s.resolveTeam(ctx, s.db, info.TeamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveCategory(ctx, s.db, info.CategoryID); err != nil {
		return nil, err
	}

	if err := s.validateAssignees(ctx, s.db, team.ID, info.ParticipantsIDs); err != nil {
		return nil, err
	}

	recurrence, err := model.RecurrenceFor(info.RepeatCycle, info.StartDt)
	if err != nil {
		return nil, err
	}

	schedule := &model.RepeatSchedule{
		Recurrence:     recurrence,
		ScheduleCreate: info.ScheduleCreate,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.schedules.CreateRepeatSchedule(ctx, tx, schedule)
	if err != nil {
		return nil, fmt.Errorf("schedules.CreateRepeatSchedule: %w", err)
	}

	// A new series is its own root.
	if err := s.schedules.SetOrigin(ctx, tx, id, id); err != nil {
		return nil, fmt.Errorf("schedules.SetOrigin: %w", err)
	}

	if err := s.schedules.AssignParticipantsToRepeat(ctx, tx, id, info.ParticipantsIDs); err != nil {
		return nil, fmt.Errorf("schedules.AssignParticipantsToRepeat: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	schedule.ID = id
	schedule.OriginRepeatScheduleID = id
	s.logger.Infow("repeat schedule saved", "id", id, "team_id", team.ID, "cycle", info.RepeatCycle)
	return schedule, nil
}
