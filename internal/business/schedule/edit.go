package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (s *Service) EditSimpleSchedule(ctx context.Context, scheduleID int64, edit *model.ScheduleEdit, memberID int64) (*model.SimpleSchedule, error) {
	if err := s.validateEdit(ctx, edit, memberID); err != nil {
		return nil, err
	}

	current, err := s.schedules.GetSimpleScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetSimpleScheduleByID: %w", err)
	}

	updated := *current
	updated.ScheduleCreate = edit.Patch.Apply(current.ScheduleCreate)
	updated.ParticipantsIDs = edit.ParticipantsIDs

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.schedules.UpdateSimpleSchedule(ctx, tx, &updated); err != nil {
		return nil, fmt.Errorf("schedules.UpdateSimpleSchedule: %w", err)
	}

	if err := s.rebuildSimpleAssignments(ctx, tx, scheduleID, edit.ParticipantsIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.logger.Infow("simple schedule updated", "id", scheduleID)
	return &updated, nil
}

// EditRepeatSchedule applies a scoped edit. ALL_SCHEDULES collapses the series
// back onto one row: the old root goes away and the edited row becomes the
// canonical series definition. The other two options persist a fresh row
// linked to the series root, leaving history untouched.
func (s *Service) EditRepeatSchedule(ctx context.Context, scheduleID int64, edit *model.RepeatScheduleEdit, memberID int64) (*model.RepeatSchedule, error) {
	switch edit.EditOption {
	case model.EditOptionAllSchedules, model.EditOptionThisSchedule, model.EditOptionThisAndFuture:
	default:
		return nil, model.ErrInvalidEditOption
	}

	if err := s.validateEdit(ctx, &edit.ScheduleEdit, memberID); err != nil {
		return nil, err
	}

	root, err := s.schedules.GetRepeatScheduleByOrigin(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetRepeatScheduleByOrigin: %w", err)
	}

	target, err := s.schedules.GetRepeatScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetRepeatScheduleByID: %w", err)
	}

	patched := edit.Patch.Apply(target.ScheduleCreate)
	recurrence, err := model.RecurrenceFor(edit.RepeatCycle, patched.StartDt)
	if err != nil {
		return nil, err
	}

	if edit.EditOption == model.EditOptionAllSchedules {
		return s.editWholeSeries(ctx, root, target, patched, recurrence, edit.ParticipantsIDs)
	}

	return s.splitSeries(ctx, root, patched, recurrence, edit.ParticipantsIDs)
}

func (s *Service) editWholeSeries(
	ctx context.Context,
	root, target *model.RepeatSchedule,
	patched model.ScheduleCreate,
	recurrence model.Recurrence,
	participantsIDs []int64,
) (*model.RepeatSchedule, error) {
	updated := *target
	updated.ScheduleCreate = patched
	updated.Recurrence = recurrence
	updated.ParticipantsIDs = participantsIDs

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if root.ID != target.ID {
		if err := s.schedules.DeleteRepeatSchedule(ctx, tx, root.ID); err != nil {
			return nil, fmt.Errorf("schedules.DeleteRepeatSchedule: %w", err)
		}
	}

	if err := s.schedules.UpdateRepeatSchedule(ctx, tx, &updated); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.ErrConflict
		}
		return nil, fmt.Errorf("schedules.UpdateRepeatSchedule: %w", err)
	}

	if err := s.rebuildRepeatAssignments(ctx, tx, target.ID, participantsIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	updated.Version++
	s.logger.Infow("repeat series updated", "id", target.ID, "old_root_id", root.ID)
	return &updated, nil
}

func (s *Service) splitSeries(
	ctx context.Context,
	root *model.RepeatSchedule,
	patched model.ScheduleCreate,
	recurrence model.Recurrence,
	participantsIDs []int64,
) (*model.RepeatSchedule, error) {
	// The split row diverges in content but stays in the series: it keeps the
	// root's origin link and the original creator.
	patched.CreateParticipantID = root.CreateParticipantID
	patched.ParticipantsIDs = participantsIDs

	split := &model.RepeatSchedule{
		OriginRepeatScheduleID: root.OriginRepeatScheduleID,
		Recurrence:             recurrence,
		ScheduleCreate:         patched,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.schedules.CreateRepeatSchedule(ctx, tx, split)
	if err != nil {
		return nil, fmt.Errorf("schedules.CreateRepeatSchedule: %w", err)
	}

	if err := s.schedules.AssignParticipantsToRepeat(ctx, tx, id, participantsIDs); err != nil {
		return nil, fmt.Errorf("schedules.AssignParticipantsToRepeat: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	split.ID = id
	s.logger.Infow("repeat schedule split from series", "id", id, "origin_id", split.OriginRepeatScheduleID)
	return split, nil
}

func (s *Service) validateEdit(ctx context.Context, edit *model.ScheduleEdit, memberID int64) error {
	if _, err := s.resolveParticipant(ctx, s.db, edit.TeamID, memberID); err != nil {
		return err
	}

	team, err := s.resolveTeam(ctx, s.db, edit.TeamID)
	if err != nil {
		return err
	}

	if edit.Patch.CategoryID != nil {
		if _, err := s.resolveCategory(ctx, s.db, *edit.Patch.CategoryID); err != nil {
			return err
		}
	}

	return s.validateAssignees(ctx, s.db, team.ID, edit.ParticipantsIDs)
}

// Assignment rebuild is a full replace: drop the old join rows, insert the new
// list. Runs inside the caller's transaction so readers never see the gap.
func (s *Service) rebuildSimpleAssignments(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error {
	if err := s.schedules.DeleteAssignmentsBySimple(ctx, q, scheduleID); err != nil {
		return fmt.Errorf("schedules.DeleteAssignmentsBySimple: %w", err)
	}

	if err := s.schedules.AssignParticipantsToSimple(ctx, q, scheduleID, participantsIDs); err != nil {
		return fmt.Errorf("schedules.AssignParticipantsToSimple: %w", err)
	}

	return nil
}

func (s *Service) rebuildRepeatAssignments(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error {
	if err := s.schedules.DeleteAssignmentsByRepeat(ctx, q, scheduleID); err != nil {
		return fmt.Errorf("schedules.DeleteAssignmentsByRepeat: %w", err)
	}

	if err := s.schedules.AssignParticipantsToRepeat(ctx, q, scheduleID, participantsIDs); err != nil {
		return fmt.Errorf("schedules.AssignParticipantsToRepeat: %w", err)
	}

	return nil
}
