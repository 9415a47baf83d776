package schedule

import (
	"context"

	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"go.uber.org/zap"
)

// Service is the schedule lifecycle engine: creation, scoped edits of repeat
// series, conversion between the two schedule kinds, deletion authorization
// and the monthly read model. Every mutating method runs as one transaction.
type Service struct {
	db         database.PGX
	logger     *zap.SugaredLogger
	teams      teamRepository
	categories categoryRepository
	schedules  scheduleRepository
}

type teamRepository interface {
	GetTeamByID(ctx context.Context, q database.Queryable, id int64) (*model.Team, error)
	GetParticipant(ctx context.Context, q database.Queryable, teamID, memberID int64) (*model.Participant, error)
	GetParticipantByID(ctx context.Context, q database.Queryable, id int64) (*model.Participant, error)
	GetParticipantsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Participant, error)
	ParticipantExists(ctx context.Context, q database.Queryable, id int64) (bool, error)
}

type categoryRepository interface {
	GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error)
}

type scheduleRepository interface {
	CreateSimpleSchedule(ctx context.Context, q database.Queryable, schedule *model.SimpleSchedule) (int64, error)
	CreateRepeatSchedule(ctx context.Context, q database.Queryable, schedule *model.RepeatSchedule) (int64, error)
	GetSimpleScheduleByID(ctx context.Context, q database.Queryable, id int64) (*model.SimpleSchedule, error)
	GetRepeatScheduleByID(ctx context.Context, q database.Queryable, id int64) (*model.RepeatSchedule, error)
	GetRepeatScheduleByOrigin(ctx context.Context, q database.Queryable, originID int64) (*model.RepeatSchedule, error)
	GetSimpleSchedules(ctx context.Context, q database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.SimpleSchedule, error)
	GetRepeatSchedules(ctx context.Context, q database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.RepeatSchedule, error)
	UpdateSimpleSchedule(ctx context.Context, q database.Queryable, schedule *model.SimpleSchedule) error
	UpdateRepeatSchedule(ctx context.Context, q database.Queryable, schedule *model.RepeatSchedule) error
	SetOrigin(ctx context.Context, q database.Queryable, scheduleID, originID int64) error
	DeleteSimpleSchedule(ctx context.Context, q database.Queryable, id int64) error
	DeleteRepeatSchedule(ctx context.Context, q database.Queryable, id int64) error
	AssignParticipantsToSimple(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error
	AssignParticipantsToRepeat(ctx context.Context, q database.Queryable, scheduleID int64, participantsIDs []int64) error
	DeleteAssignmentsBySimple(ctx context.Context, q database.Queryable, scheduleID int64) error
	DeleteAssignmentsByRepeat(ctx context.Context, q database.Queryable, scheduleID int64) error
	GetAssignedParticipantsIDsBySimple(ctx context.Context, q database.Queryable, scheduleID int64) ([]int64, error)
	GetAssignedParticipantsIDsByRepeat(ctx context.Context, q database.Queryable, scheduleID int64) ([]int64, error)
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	teams teamRepository,
	categories categoryRepository,
	schedules scheduleRepository,
) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		teams:      teams,
		categories: categories,
		schedules:  schedules,
	}
}
