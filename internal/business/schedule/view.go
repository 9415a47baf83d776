package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

// MonthlySchedules merges both schedule kinds into the unified read model:
// repeat schedules first, then simple ones, each in stable id order. Sorting
// beyond that is the caller's concern.
func (s *Service) MonthlySchedules(ctx context.Context, teamID int64, categoryType *model.CategoryType, memberID int64) ([]*model.ScheduleView, error) {
	if _, err := s.resolveParticipant(ctx, s.db, teamID, memberID); err != nil {
		return nil, err
	}

	repeats, err := s.schedules.GetRepeatSchedules(ctx, s.db, teamID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetRepeatSchedules: %w", err)
	}

	simples, err := s.schedules.GetSimpleSchedules(ctx, s.db, teamID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetSimpleSchedules: %w", err)
	}

	res := make([]*model.ScheduleView, 0, len(repeats)+len(simples))

	for _, r := range repeats {
		assigned, err := s.schedules.GetAssignedParticipantsIDsByRepeat(ctx, s.db, r.ID)
		if err != nil {
			return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsByRepeat: %w", err)
		}

		view, err := s.scheduleView(ctx, model.ScheduleTypeRepeat, r.ID, r.ScheduleCreate, assigned)
		if err != nil {
			return nil, err
		}
		res = append(res, view)
	}

	for _, sch := range simples {
		assigned, err := s.schedules.GetAssignedParticipantsIDsBySimple(ctx, s.db, sch.ID)
		if err != nil {
			return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsBySimple: %w", err)
		}

		view, err := s.scheduleView(ctx, model.ScheduleTypeSimple, sch.ID, sch.ScheduleCreate, assigned)
		if err != nil {
			return nil, err
		}
		res = append(res, view)
	}

	return res, nil
}

func (s *Service) SimpleScheduleDetail(ctx context.Context, scheduleID, teamID, memberID int64) (*model.SimpleSchedule, error) {
	if _, err := s.resolveTeam(ctx, s.db, teamID); err != nil {
		return nil, err
	}

	if _, err := s.resolveParticipant(ctx, s.db, teamID, memberID); err != nil {
		return nil, err
	}

	schedule, err := s.schedules.GetSimpleScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetSimpleScheduleByID: %w", err)
	}

	if schedule.TeamID != teamID {
		return nil, model.ErrScheduleNotFound
	}

	schedule.ParticipantsIDs, err = s.schedules.GetAssignedParticipantsIDsBySimple(ctx, s.db, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsBySimple: %w", err)
	}

	return schedule, nil
}

func (s *Service) RepeatScheduleDetail(ctx context.Context, scheduleID, teamID, memberID int64) (*model.RepeatSchedule, error) {
	if _, err := s.resolveTeam(ctx, s.db, teamID); err != nil {
		return nil, err
	}

	if _, err := s.resolveParticipant(ctx, s.db, teamID, memberID); err != nil {
		return nil, err
	}

	schedule, err := s.schedules.GetRepeatScheduleByID(ctx, s.db, scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetRepeatScheduleByID: %w", err)
	}

	if schedule.TeamID != teamID {
		return nil, model.ErrScheduleNotFound
	}

	schedule.ParticipantsIDs, err = s.schedules.GetAssignedParticipantsIDsByRepeat(ctx, s.db, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsByRepeat: %w", err)
	}

	return schedule, nil
}

func (s *Service) scheduleView(ctx context.Context, typ model.ScheduleType, id int64, info model.ScheduleCreate, assigned []int64) (*model.ScheduleView, error) {
	category, err := s.resolveCategory(ctx, s.db, info.CategoryID)
	if err != nil {
		return nil, err
	}

	participants, err := s.teams.GetParticipantsByIDs(ctx, s.db, assigned)
	if err != nil {
		return nil, fmt.Errorf("teams.GetParticipantsByIDs: %w", err)
	}

	views := make([]model.ParticipantView, len(participants))
	for i, p := range participants {
		views[i] = model.ParticipantView{
			ID:       p.ID,
			Nickname: p.Nickname,
			Role:     p.Role,
		}
	}

	return &model.ScheduleView{
		ID:           id,
		Type:         typ,
		Title:        info.Title,
		StartDt:      info.StartDt,
		EndDt:        info.EndDt,
		Category:     category,
		Participants: views,
	}, nil
}
