package schedule

import (
	"context"
	"sort"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/model"
)

// fakeDB satisfies database.PGX; the in-memory store below does the actual
// bookkeeping, so every query method is a no-op.
type fakeDB struct{}

func (fakeDB) Exec(context.Context, database.Sqlizer) (pgconn.CommandTag, error) { return nil, nil }
func (fakeDB) Get(context.Context, interface{}, database.Sqlizer) error         { return nil }
func (fakeDB) Select(context.Context, interface{}, database.Sqlizer) error      { return nil }
func (fakeDB) ExecRaw(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (f fakeDB) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	return fakeTx{f}, nil
}

type fakeTx struct{ fakeDB }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

// store is an in-memory stand-in for all three repositories. It mirrors the
// cascade behaviour of the real schema: deleting a schedule drops its
// assignment rows.
type store struct {
	teams        map[int64]*model.Team
	participants map[int64]*model.Participant
	categories   map[int64]*model.Category

	simples map[int64]*model.SimpleSchedule
	repeats map[int64]*model.RepeatSchedule

	simpleAssignments map[int64][]int64
	repeatAssignments map[int64][]int64

	nextID int64
	writes int

	// beforeUpdateRepeat, when set, runs right before the version check so a
	// test can squeeze a concurrent write between read and update.
	beforeUpdateRepeat func()
}

func newStore() *store {
	return &store{
		teams:             make(map[int64]*model.Team),
		participants:      make(map[int64]*model.Participant),
		categories:        make(map[int64]*model.Category),
		simples:           make(map[int64]*model.SimpleSchedule),
		repeats:           make(map[int64]*model.RepeatSchedule),
		simpleAssignments: make(map[int64][]int64),
		repeatAssignments: make(map[int64][]int64),
		nextID:            100,
	}
}

func (st *store) id() int64 {
	st.nextID++
	return st.nextID
}

func (st *store) addTeam(id int64, name string) *model.Team {
	team := &model.Team{ID: id, TeamCreate: model.TeamCreate{Name: name, MemberLimit: 10}}
	st.teams[id] = team
	return team
}

func (st *store) addParticipant(id, teamID, memberID int64, role model.Role) *model.Participant {
	p := &model.Participant{
		ID: id,
		ParticipantCreate: model.ParticipantCreate{
			TeamID:   teamID,
			MemberID: memberID,
			Nickname: "nickname",
			Role:     role,
		},
	}
	st.participants[id] = p
	return p
}

func (st *store) addCategory(id, teamID int64, typ model.CategoryType) *model.Category {
	c := &model.Category{
		ID: id,
		CategoryCreate: model.CategoryCreate{
			TeamID:       teamID,
			Name:         "category",
			CategoryType: typ,
			Color:        "#ff0000",
		},
	}
	st.categories[id] = c
	return c
}

func (st *store) GetTeamByID(_ context.Context, _ database.Queryable, id int64) (*model.Team, error) {
	team, ok := st.teams[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return team, nil
}

func (st *store) GetParticipant(_ context.Context, _ database.Queryable, teamID, memberID int64) (*model.Participant, error) {
	for _, p := range st.participants {
		if p.TeamID == teamID && p.MemberID == memberID {
			return p, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (st *store) GetParticipantByID(_ context.Context, _ database.Queryable, id int64) (*model.Participant, error) {
	p, ok := st.participants[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return p, nil
}

func (st *store) GetParticipantsByIDs(_ context.Context, _ database.Queryable, ids []int64) ([]*model.Participant, error) {
	res := make([]*model.Participant, 0, len(ids))
	for _, id := range ids {
		if p, ok := st.participants[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (st *store) ParticipantExists(_ context.Context, _ database.Queryable, id int64) (bool, error) {
	_, ok := st.participants[id]
	return ok, nil
}

func (st *store) GetCategoryByID(_ context.Context, _ database.Queryable, id int64) (*model.Category, error) {
	c, ok := st.categories[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return c, nil
}

func (st *store) CreateSimpleSchedule(_ context.Context, _ database.Queryable, schedule *model.SimpleSchedule) (int64, error) {
	st.writes++
	id := st.id()
	stored := *schedule
	stored.ID = id
	st.simples[id] = &stored
	return id, nil
}

func (st *store) CreateRepeatSchedule(_ context.Context, _ database.Queryable, schedule *model.RepeatSchedule) (int64, error) {
	st.writes++
	id := st.id()
	stored := *schedule
	stored.ID = id
	st.repeats[id] = &stored
	return id, nil
}

func (st *store) GetSimpleScheduleByID(_ context.Context, _ database.Queryable, id int64) (*model.SimpleSchedule, error) {
	s, ok := st.simples[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	cp := *s
	return &cp, nil
}

func (st *store) GetRepeatScheduleByID(_ context.Context, _ database.Queryable, id int64) (*model.RepeatSchedule, error) {
	s, ok := st.repeats[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	cp := *s
	return &cp, nil
}

func (st *store) GetRepeatScheduleByOrigin(_ context.Context, _ database.Queryable, originID int64) (*model.RepeatSchedule, error) {
	var found *model.RepeatSchedule
	for _, s := range st.repeats {
		if s.OriginRepeatScheduleID != originID {
			continue
		}
		if found == nil || s.ID < found.ID {
			found = s
		}
	}
	if found == nil {
		return nil, model.ErrNoRecord
	}
	cp := *found
	return &cp, nil
}

func (st *store) GetSimpleSchedules(_ context.Context, _ database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.SimpleSchedule, error) {
	var res []*model.SimpleSchedule
	for _, s := range st.simples {
		if s.TeamID != teamID || !st.matchesType(s.CategoryID, categoryType) {
			continue
		}
		cp := *s
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (st *store) GetRepeatSchedules(_ context.Context, _ database.Queryable, teamID int64, categoryType *model.CategoryType) ([]*model.RepeatSchedule, error) {
	var res []*model.RepeatSchedule
	for _, s := range st.repeats {
		if s.TeamID != teamID || !st.matchesType(s.CategoryID, categoryType) {
			continue
		}
		cp := *s
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (st *store) matchesType(categoryID int64, categoryType *model.CategoryType) bool {
	if categoryType == nil {
		return true
	}
	c, ok := st.categories[categoryID]
	return ok && c.CategoryType == *categoryType
}

func (st *store) UpdateSimpleSchedule(_ context.Context, _ database.Queryable, schedule *model.SimpleSchedule) error {
	st.writes++
	if _, ok := st.simples[schedule.ID]; !ok {
		return model.ErrNoRecord
	}
	cp := *schedule
	st.simples[schedule.ID] = &cp
	return nil
}

func (st *store) UpdateRepeatSchedule(_ context.Context, _ database.Queryable, schedule *model.RepeatSchedule) error {
	st.writes++
	if st.beforeUpdateRepeat != nil {
		st.beforeUpdateRepeat()
	}
	current, ok := st.repeats[schedule.ID]
	if !ok || current.Version != schedule.Version {
		return model.ErrConflict
	}
	cp := *schedule
	cp.Version++
	st.repeats[schedule.ID] = &cp
	return nil
}

func (st *store) SetOrigin(_ context.Context, _ database.Queryable, scheduleID, originID int64) error {
	st.writes++
	s, ok := st.repeats[scheduleID]
	if !ok {
		return model.ErrNoRecord
	}
	s.OriginRepeatScheduleID = originID
	return nil
}

func (st *store) DeleteSimpleSchedule(_ context.Context, _ database.Queryable, id int64) error {
	st.writes++
	delete(st.simples, id)
	delete(st.simpleAssignments, id)
	return nil
}

func (st *store) DeleteRepeatSchedule(_ context.Context, _ database.Queryable, id int64) error {
	st.writes++
	delete(st.repeats, id)
	delete(st.repeatAssignments, id)
	return nil
}

func (st *store) AssignParticipantsToSimple(_ context.Context, _ database.Queryable, scheduleID int64, participantsIDs []int64) error {
	st.writes++
	st.simpleAssignments[scheduleID] = append(st.simpleAssignments[scheduleID], participantsIDs...)
	return nil
}

func (st *store) AssignParticipantsToRepeat(_ context.Context, _ database.Queryable, scheduleID int64, participantsIDs []int64) error {
	st.writes++
	st.repeatAssignments[scheduleID] = append(st.repeatAssignments[scheduleID], participantsIDs...)
	return nil
}

func (st *store) DeleteAssignmentsBySimple(_ context.Context, _ database.Queryable, scheduleID int64) error {
	st.writes++
	delete(st.simpleAssignments, scheduleID)
	return nil
}

func (st *store) DeleteAssignmentsByRepeat(_ context.Context, _ database.Queryable, scheduleID int64) error {
	st.writes++
	delete(st.repeatAssignments, scheduleID)
	return nil
}

func (st *store) GetAssignedParticipantsIDsBySimple(_ context.Context, _ database.Queryable, scheduleID int64) ([]int64, error) {
	return append([]int64(nil), st.simpleAssignments[scheduleID]...), nil
}

func (st *store) GetAssignedParticipantsIDsByRepeat(_ context.Context, _ database.Queryable, scheduleID int64) ([]int64, error) {
	return append([]int64(nil), st.repeatAssignments[scheduleID]...), nil
}
