package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (s *Service) DeleteSimpleSchedule(ctx context.Context, req *model.ScheduleDelete, memberID int64) (*model.ScheduleDeleteResult, error) {
	schedule, err := s.schedules.GetSimpleScheduleByID(ctx, s.db, req.ScheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetSimpleScheduleByID: %w", err)
	}

	requester, err := s.resolveParticipant(ctx, s.db, req.TeamID, memberID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.schedules.GetAssignedParticipantsIDsBySimple(ctx, s.db, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsBySimple: %w", err)
	}

	if err := s.authorizeDeletion(ctx, requester, schedule.CreateParticipantID); err != nil {
		return nil, err
	}

	if err := s.schedules.DeleteSimpleSchedule(ctx, s.db, schedule.ID); err != nil {
		return nil, fmt.Errorf("schedules.DeleteSimpleSchedule: %w", err)
	}

	s.logger.Infow("simple schedule deleted", "id", schedule.ID, "by", requester.ID)
	return &model.ScheduleDeleteResult{
		RequesterID:     requester.ID,
		ParticipantsIDs: assigned,
		Title:           schedule.Title,
		Message:         "simple schedule deleted",
	}, nil
}

func (s *Service) DeleteRepeatSchedule(ctx context.Context, req *model.ScheduleDelete, memberID int64) (*model.ScheduleDeleteResult, error) {
	schedule, err := s.schedules.GetRepeatScheduleByID(ctx, s.db, req.ScheduleID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("schedules.GetRepeatScheduleByID: %w", err)
	}

	requester, err := s.resolveParticipant(ctx, s.db, req.TeamID, memberID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.schedules.GetAssignedParticipantsIDsByRepeat(ctx, s.db, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("schedules.GetAssignedParticipantsIDsByRepeat: %w", err)
	}

	if err := s.authorizeDeletion(ctx, requester, schedule.CreateParticipantID); err != nil {
		return nil, err
	}

	if err := s.schedules.DeleteRepeatSchedule(ctx, s.db, schedule.ID); err != nil {
		return nil, fmt.Errorf("schedules.DeleteRepeatSchedule: %w", err)
	}

	s.logger.Infow("repeat schedule deleted", "id", schedule.ID, "by", requester.ID)
	return &model.ScheduleDeleteResult{
		RequesterID:     requester.ID,
		ParticipantsIDs: assigned,
		Title:           schedule.Title,
		Message:         "repeat schedule deleted",
	}, nil
}

func (s *Service) authorizeDeletion(ctx context.Context, requester *model.Participant, creatorID int64) error {
	creatorExists := false
	if requester.Role.Privileged() && requester.ID != creatorID {
		var err error
		creatorExists, err = s.teams.ParticipantExists(ctx, s.db, creatorID)
		if err != nil {
			return fmt.Errorf("teams.ParticipantExists: %w", err)
		}
	}

	return decideDeletion(requester, creatorID, creatorExists)
}

// decideDeletion is the role/creator decision table. A privileged requester
// may delete another participant's schedule only once its creator has left the
// team; an ordinary requester must be the recorded creator.
func decideDeletion(requester *model.Participant, creatorID int64, creatorExists bool) error {
	if requester.Role.Privileged() && requester.ID != creatorID {
		if creatorExists {
			return model.ErrCreatorStillExists
		}
		return nil
	}

	if requester.ID != creatorID {
		return model.ErrCreatorMismatch
	}

	return nil
}
