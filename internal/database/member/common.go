package member

import (
	"github.com/teamplan/team-calendar-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"full_name",
		"email",
		"photo",
	).
	From(database.MembersTable)
