package database

import sq "github.com/Masterminds/squirrel"

// PSQL - squirrel builder с $-плейсхолдерами для PostgreSQL.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	MembersTable              = "members"
	TeamsTable                = "teams"
	TeamParticipantsTable     = "team_participants"
	CategoriesTable           = "schedule_categories"
	SimpleSchedulesTable      = "simple_schedules"
	RepeatSchedulesTable      = "repeat_schedules"
	ParticipantSchedulesTable = "team_participants_schedules"
)
