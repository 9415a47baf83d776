package schedule

import (
	"github.com/teamplan/team-calendar-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var simpleBaseQuery = database.PSQL.
	Select(
		"s.id",
		"s.team_id",
		"s.category_id",
		"s.title",
		"s.content",
		"s.place",
		"s.start_dt",
		"s.end_dt",
		"s.color",
		"s.create_participant_id",
		"s.converted",
	).
	From(database.SimpleSchedulesTable + " s")

var repeatBaseQuery = database.PSQL.
	Select(
		"r.id",
		"r.team_id",
		"r.category_id",
		"r.title",
		"r.content",
		"r.place",
		"r.start_dt",
		"r.end_dt",
		"r.color",
		"r.create_participant_id",
		"r.repeat_cycle",
		"r.day_of_week",
		"r.day",
		"r.month",
		"r.origin_repeat_schedule_id",
		"r.version",
	).
	From(database.RepeatSchedulesTable + " r")
