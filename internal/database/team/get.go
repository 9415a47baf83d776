package team

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) GetTeamByID(ctx context.Context, q database.Queryable, id int64) (*model.Team, error) {
	qb := teamBaseQuery.
		Where(sq.Eq{"id": id})

	dto := &teamDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTeam(dto), nil
}

// GetParticipant находит запись участника по паре (team, member).
func (*Repository) GetParticipant(ctx context.Context, q database.Queryable, teamID, memberID int64) (*model.Participant, error) {
	participants, err := getParticipants(ctx, q, sq.Eq{"team_id": teamID, "member_id": memberID})
	if err != nil {
		return nil, err
	}

	if len(participants) == 0 {
		return nil, model.ErrNoRecord
	}

	return participants[0], nil
}

func (*Repository) GetParticipantByID(ctx context.Context, q database.Queryable, id int64) (*model.Participant, error) {
	participants, err := getParticipants(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(participants) == 0 {
		return nil, model.ErrNoRecord
	}

	return participants[0], nil
}

func (*Repository) GetParticipantsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Participant, error) {
	return getParticipants(ctx, q, sq.Eq{"id": ids})
}

// ParticipantExists сообщает, состоит ли участник до сих пор в своей команде.
func (*Repository) ParticipantExists(ctx context.Context, q database.Queryable, id int64) (bool, error) {
	qb := database.PSQL.
		Select("count(*)").
		From(database.TeamParticipantsTable).
		Where(sq.Eq{"id": id})

	var count int64
	if err := q.Get(ctx, &count, qb); err != nil {
		return false, fmt.Errorf("SQL request: %w", err)
	}

	return count != 0, nil
}

func getParticipants(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Participant, error) {
	qb := participantBaseQuery.
		Where(predicate)

	var dtos []*participantDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Participant, len(dtos))
	for i, d := range dtos {
		res[i] = mapToParticipant(d)
	}

	return res, nil
}
