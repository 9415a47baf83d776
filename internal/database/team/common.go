package team

import (
	"github.com/teamplan/team-calendar-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var teamBaseQuery = database.PSQL.
	Select(
		"id",
		"name",
		"member_limit",
		"profile_url",
		"invite_link",
		"is_delete",
		"restoration_dt",
	).
	From(database.TeamsTable)

var participantBaseQuery = database.PSQL.
	Select(
		"id",
		"team_id",
		"member_id",
		"nickname",
		"team_role",
	).
	From(database.TeamParticipantsTable)
