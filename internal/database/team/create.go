package team

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

func (*Repository) CreateTeam(ctx context.Context, q database.Queryable, team *model.TeamCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.TeamsTable).
		Columns("name", "member_limit", "profile_url").
		Values(team.Name, team.MemberLimit, team.ProfileURL).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) SetInviteLink(ctx context.Context, q database.Queryable, teamID int64, link string) error {
	qb := database.PSQL.
		Update(database.TeamsTable).
		Set("invite_link", link).
		Where(sq.Eq{"id": teamID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) AddParticipant(ctx context.Context, q database.Queryable, participant *model.ParticipantCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.TeamParticipantsTable).
		Columns("team_id", "member_id", "nickname", "team_role").
		Values(
			participant.TeamID,
			participant.MemberID,
			participant.Nickname,
			int(participant.Role),
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
