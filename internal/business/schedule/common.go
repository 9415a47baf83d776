package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

// resolveParticipant is the authorization gate: every operation starts by
// proving the requesting member belongs to the team.
func (s *Service) resolveParticipant(ctx context.Context, q database.Queryable, teamID, memberID int64) (*model.Participant, error) {
	participant, err := s.teams.GetParticipant(ctx, q, teamID, memberID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("teams.GetParticipant: %w", err)
	}

	return participant, nil
}

func (s *Service) resolveTeam(ctx context.Context, q database.Queryable, teamID int64) (*model.Team, error) {
	team, err := s.teams.GetTeamByID(ctx, q, teamID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrTeamNotFound
		}
		return nil, fmt.Errorf("teams.GetTeamByID: %w", err)
	}

	return team, nil
}

func (s *Service) resolveCategory(ctx context.Context, q database.Queryable, categoryID int64) (*model.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, q, categoryID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("categories.GetCategoryByID: %w", err)
	}

	return category, nil
}

// validateAssignees rejects duplicate ids and ids from another team before
// anything is written.
func (s *Service) validateAssignees(ctx context.Context, q database.Queryable, teamID int64, participantsIDs []int64) error {
	if hasDuplicateIDs(participantsIDs) {
		return model.ErrDuplicateParticipant
	}

	for _, id := range participantsIDs {
		participant, err := s.teams.GetParticipantByID(ctx, q, id)
		if err != nil {
			if errors.Is(err, model.ErrNoRecord) {
				return model.ErrParticipantNotFound
			}
			return fmt.Errorf("teams.GetParticipantByID: %w", err)
		}

		if participant.TeamID != teamID {
			return model.ErrParticipantTeamMismatch
		}
	}

	return nil
}

func hasDuplicateIDs(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}

	return false
}
