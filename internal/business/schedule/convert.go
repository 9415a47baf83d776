package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

// ConvertSimpleToRepeat replaces a one-off schedule with a recurring series in
// one transaction. The creator id travels with the schedule across the swap.
func (s *Service) ConvertSimpleToRepeat(ctx context.Context, scheduleID int64, edit *model.SimpleToRepeatEdit, memberID int64) (*model.RepeatSchedule, error) {
	if err := s.validateEdit(ctx, &edit.ScheduleEdit, memberID); err != nil {
		return nil, err
	}

	source, err := s.schedules.GetSimpleScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetSimpleScheduleByID: %w", err)
	}

	patched := edit.Patch.Apply(source.ScheduleCreate)
	patched.ParticipantsIDs = edit.ParticipantsIDs

	recurrence, err := model.RecurrenceFor(edit.RepeatCycle, patched.StartDt)
	if err != nil {
		return nil, err
	}

	repeat := &model.RepeatSchedule{
		Recurrence:     recurrence,
		ScheduleCreate: patched,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.schedules.DeleteSimpleSchedule(ctx, tx, source.ID); err != nil {
		return nil, fmt.Errorf("schedules.DeleteSimpleSchedule: %w", err)
	}

	id, err := s.schedules.CreateRepeatSchedule(ctx, tx, repeat)
	if err != nil {
		return nil, fmt.Errorf("schedules.CreateRepeatSchedule: %w", err)
	}

	if err := s.schedules.SetOrigin(ctx, tx, id, id); err != nil {
		return nil, fmt.Errorf("schedules.SetOrigin: %w", err)
	}

	if err := s.schedules.AssignParticipantsToRepeat(ctx, tx, id, edit.ParticipantsIDs); err != nil {
		return nil, fmt.Errorf("schedules.AssignParticipantsToRepeat: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	repeat.ID = id
	repeat.OriginRepeatScheduleID = id
	s.logger.Infow("schedule converted", "from", "simple", "to", "repeat", "old_id", source.ID, "new_id", id)
	return repeat, nil
}

// ConvertRepeatToSimple collapses a recurring series into a one-off schedule
// carrying the converted marker.
func (s *Service) ConvertRepeatToSimple(ctx context.Context, scheduleID int64, edit *model.RepeatToSimpleEdit, memberID int64) (*model.SimpleSchedule, error) {
	if err := s.validateEdit(ctx, &edit.ScheduleEdit, memberID); err != nil {
		return nil, err
	}

	source, err := s.schedules.GetRepeatScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetRepeatScheduleByID: %w", err)
	}

	patched := edit.Patch.Apply(source.ScheduleCreate)
	patched.ParticipantsIDs = edit.ParticipantsIDs

	simple := &model.SimpleSchedule{
		Converted:      true,
		ScheduleCreate: patched,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.schedules.DeleteRepeatSchedule(ctx, tx, source.ID); err != nil {
		return nil, fmt.Errorf("schedules.DeleteRepeatSchedule: %w", err)
	}

	id, err := s.schedules.CreateSimpleSchedule(ctx, tx, simple)
	if err != nil {
		return nil, fmt.Errorf("schedules.CreateSimpleSchedule: %w", err)
	}

	if err := s.schedules.AssignParticipantsToSimple(ctx, tx, id, edit.ParticipantsIDs); err != nil {
		return nil, fmt.Errorf("schedules.AssignParticipantsToSimple: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	simple.ID = id
	s.logger.Infow("schedule converted", "from", "repeat", "to", "simple", "old_id", source.ID, "new_id", id)
	return simple, nil
}
