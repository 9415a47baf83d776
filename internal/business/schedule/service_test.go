package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"go.uber.org/zap"
)

const (
	testTeamID     = int64(1)
	testCategoryID = int64(3)

	leaderParticipantID = int64(5)
	mateParticipantID   = int64(6)
	otherParticipantID  = int64(7)

	leaderMemberID = int64(10)
	mateMemberID   = int64(11)
	otherMemberID  = int64(12)
)

func newTestService(t *testing.T) (*Service, *store) {
	t.Helper()

	st := newStore()
	st.addTeam(testTeamID, "dev team")
	st.addCategory(testCategoryID, testTeamID, model.CategoryTypeSchedule)
	st.addParticipant(leaderParticipantID, testTeamID, leaderMemberID, model.RoleLeader)
	st.addParticipant(mateParticipantID, testTeamID, mateMemberID, model.RoleMate)
	st.addParticipant(otherParticipantID, testTeamID, otherMemberID, model.RoleMate)

	return NewService(fakeDB{}, zap.NewNop().Sugar(), st, st, st), st
}

func testScheduleCreate(creatorID int64, participantsIDs ...int64) model.ScheduleCreate {
	return model.ScheduleCreate{
		TeamID:              testTeamID,
		CategoryID:          testCategoryID,
		Title:               "sprint planning",
		Content:             "backlog grooming",
		Place:               "room 4",
		StartDt:             time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		EndDt:               time.Date(2024, time.March, 15, 11, 0, 0, 0, time.UTC),
		Color:               "#3aa7f0",
		CreateParticipantID: creatorID,
		ParticipantsIDs:     participantsIDs,
	}
}

func TestCreateSimpleSchedule(t *testing.T) {
	s, st := newTestService(t)

	info := testScheduleCreate(mateParticipantID, mateParticipantID, otherParticipantID)
	created, err := s.CreateSimpleSchedule(context.Background(), &info, mateMemberID)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.False(t, created.Converted)
	assert.Equal(t, "sprint planning", created.Title)
	assert.Equal(t, []int64{mateParticipantID, otherParticipantID}, st.simpleAssignments[created.ID])
}

func TestCreateSimpleScheduleValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(st *store, info *model.ScheduleCreate)
		memberID int64
		wantErr  error
	}{
		{
			name:     "requester not in team",
			mutate:   func(st *store, info *model.ScheduleCreate) {},
			memberID: int64(999),
			wantErr:  model.ErrParticipantNotFound,
		},
		{
			name: "unknown team",
			mutate: func(st *store, info *model.ScheduleCreate) {
				info.TeamID = 999
				st.addParticipant(50, 999, leaderMemberID, model.RoleMate)
			},
			memberID: leaderMemberID,
			wantErr:  model.ErrTeamNotFound,
		},
		{
			name: "unknown category",
			mutate: func(st *store, info *model.ScheduleCreate) {
				info.CategoryID = 999
			},
			memberID: leaderMemberID,
			wantErr:  model.ErrCategoryNotFound,
		},
		{
			name: "duplicate assignee ids",
			mutate: func(st *store, info *model.ScheduleCreate) {
				info.ParticipantsIDs = []int64{mateParticipantID, mateParticipantID, otherParticipantID}
			},
			memberID: leaderMemberID,
			wantErr:  model.ErrDuplicateParticipant,
		},
		{
			name: "unknown assignee",
			mutate: func(st *store, info *model.ScheduleCreate) {
				info.ParticipantsIDs = []int64{mateParticipantID, 999}
			},
			memberID: leaderMemberID,
			wantErr:  model.ErrParticipantNotFound,
		},
		{
			name: "assignee from another team",
			mutate: func(st *store, info *model.ScheduleCreate) {
				st.addTeam(2, "other team")
				st.addParticipant(60, 2, int64(777), model.RoleMate)
				info.ParticipantsIDs = []int64{mateParticipantID, 60}
			},
			memberID: leaderMemberID,
			wantErr:  model.ErrParticipantTeamMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService(t)

			info := testScheduleCreate(leaderParticipantID, mateParticipantID)
			tt.mutate(st, &info)

			_, err := s.CreateSimpleSchedule(context.Background(), &info, tt.memberID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, st.writes, "validation failure must not write anything")
		})
	}
}

func TestCreateRepeatSchedule(t *testing.T) {
	s, st := newTestService(t)

	info := &model.RepeatScheduleCreate{
		RepeatCycle:    model.RepeatCycleWeekly,
		ScheduleCreate: testScheduleCreate(leaderParticipantID, leaderParticipantID),
	}
	created, err := s.CreateRepeatSchedule(context.Background(), info, leaderMemberID)
	require.NoError(t, err)

	// 2024-03-15 is a Friday; weekly recurrence carries the weekday only.
	assert.Equal(t, model.RepeatCycleWeekly, created.Recurrence.Cycle)
	assert.Equal(t, "FRIDAY", created.Recurrence.DayOfWeek)
	assert.Zero(t, created.Recurrence.Day)
	assert.Empty(t, created.Recurrence.Month)

	assert.Equal(t, created.ID, created.OriginRepeatScheduleID, "a fresh series is its own root")
	assert.Equal(t, created.ID, st.repeats[created.ID].OriginRepeatScheduleID)
	assert.Equal(t, []int64{leaderParticipantID}, st.repeatAssignments[created.ID])
}

func TestCreateRepeatScheduleInvalidCycle(t *testing.T) {
	s, st := newTestService(t)

	info := &model.RepeatScheduleCreate{
		RepeatCycle:    model.RepeatCycle(42),
		ScheduleCreate: testScheduleCreate(leaderParticipantID),
	}
	_, err := s.CreateRepeatSchedule(context.Background(), info, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrInvalidRepeatCycle)
	assert.Zero(t, st.writes)
}

func TestEditSimpleSchedule(t *testing.T) {
	s, st := newTestService(t)

	info := testScheduleCreate(leaderParticipantID, leaderParticipantID, mateParticipantID)
	created, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	title := "retro"
	edit := &model.ScheduleEdit{
		TeamID:          testTeamID,
		Patch:           model.SchedulePatch{Title: &title},
		ParticipantsIDs: []int64{otherParticipantID},
	}
	updated, err := s.EditSimpleSchedule(context.Background(), created.ID, edit, leaderMemberID)
	require.NoError(t, err)

	assert.Equal(t, "retro", updated.Title)
	assert.Equal(t, "backlog grooming", updated.Content, "absent patch fields keep their values")
	assert.Equal(t, "room 4", updated.Place)
	assert.Equal(t, leaderParticipantID, updated.CreateParticipantID)
	assert.Equal(t, []int64{otherParticipantID}, st.simpleAssignments[created.ID], "assignments fully replaced")
}

func TestEditSimpleScheduleNotFound(t *testing.T) {
	s, _ := newTestService(t)

	edit := &model.ScheduleEdit{TeamID: testTeamID}
	_, err := s.EditSimpleSchedule(context.Background(), 999, edit, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrScheduleNotFound)
}

func TestEditRepeatScheduleWholeSeries(t *testing.T) {
	s, st := newTestService(t)

	created := createRepeat(t, s, leaderParticipantID, leaderParticipantID)

	title := "weekly sync"
	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	edit := &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          testTeamID,
			Patch:           model.SchedulePatch{Title: &title, StartDt: &start},
			ParticipantsIDs: []int64{mateParticipantID},
		},
		RepeatCycle: model.RepeatCycleMonthly,
		EditOption:  model.EditOptionAllSchedules,
	}
	updated, err := s.EditRepeatSchedule(context.Background(), created.ID, edit, leaderMemberID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "whole-series edit rewrites in place")
	assert.Equal(t, "weekly sync", updated.Title)
	assert.Equal(t, model.RepeatCycleMonthly, updated.Recurrence.Cycle)
	assert.Equal(t, 3, updated.Recurrence.Day)
	assert.Empty(t, updated.Recurrence.DayOfWeek)
	assert.Equal(t, created.Version+1, updated.Version)
	assert.Equal(t, []int64{mateParticipantID}, st.repeatAssignments[created.ID])
}

func TestEditRepeatScheduleWholeSeriesDropsOldRoot(t *testing.T) {
	s, st := newTestService(t)

	// A series where the canonical row is not the oldest one: row 200 is the
	// series identity, row 150 an earlier leftover pointing at it.
	oldRoot := &model.RepeatSchedule{
		ID:                     150,
		OriginRepeatScheduleID: 200,
		Recurrence:             model.Recurrence{Cycle: model.RepeatCycleWeekly, DayOfWeek: "MONDAY"},
		ScheduleCreate:         testScheduleCreate(leaderParticipantID),
	}
	target := &model.RepeatSchedule{
		ID:                     200,
		OriginRepeatScheduleID: 200,
		Recurrence:             model.Recurrence{Cycle: model.RepeatCycleWeekly, DayOfWeek: "MONDAY"},
		ScheduleCreate:         testScheduleCreate(leaderParticipantID),
	}
	st.repeats[150] = oldRoot
	st.repeats[200] = target

	edit := &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{TeamID: testTeamID},
		RepeatCycle:  model.RepeatCycleWeekly,
		EditOption:   model.EditOptionAllSchedules,
	}
	updated, err := s.EditRepeatSchedule(context.Background(), 200, edit, leaderMemberID)
	require.NoError(t, err)

	assert.Equal(t, int64(200), updated.ID)
	assert.NotContains(t, st.repeats, int64(150), "stale root removed")
	assert.Contains(t, st.repeats, int64(200))
}

func TestEditRepeatScheduleSplit(t *testing.T) {
	for _, option := range []model.EditOption{model.EditOptionThisSchedule, model.EditOptionThisAndFuture} {
		t.Run(option.String(), func(t *testing.T) {
			s, st := newTestService(t)

			created := createRepeat(t, s, leaderParticipantID, leaderParticipantID)

			title := "standup"
			edit := &model.RepeatScheduleEdit{
				ScheduleEdit: model.ScheduleEdit{
					TeamID:          testTeamID,
					Patch:           model.SchedulePatch{Title: &title},
					ParticipantsIDs: []int64{otherParticipantID},
				},
				RepeatCycle: model.RepeatCycleWeekly,
				EditOption:  option,
			}
			// The mate edits, the series keeps the leader as creator.
			split, err := s.EditRepeatSchedule(context.Background(), created.ID, edit, mateMemberID)
			require.NoError(t, err)

			assert.NotEqual(t, created.ID, split.ID, "split persists a fresh row")
			assert.Equal(t, created.OriginRepeatScheduleID, split.OriginRepeatScheduleID, "split stays linked to the series root")
			assert.Equal(t, leaderParticipantID, split.CreateParticipantID, "creator travels from the root")
			assert.Equal(t, "standup", split.Title)

			assert.Contains(t, st.repeats, created.ID, "root left untouched")
			assert.Equal(t, "sprint planning", st.repeats[created.ID].Title)
			assert.Equal(t, []int64{otherParticipantID}, st.repeatAssignments[split.ID])
		})
	}
}

func TestEditRepeatScheduleInvalidOption(t *testing.T) {
	s, _ := newTestService(t)

	created := createRepeat(t, s, leaderParticipantID)

	edit := &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{TeamID: testTeamID},
		RepeatCycle:  model.RepeatCycleWeekly,
		EditOption:   model.EditOption(42),
	}
	_, err := s.EditRepeatSchedule(context.Background(), created.ID, edit, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrInvalidEditOption)
}

func TestEditRepeatScheduleMissingRoot(t *testing.T) {
	s, _ := newTestService(t)

	edit := &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{TeamID: testTeamID},
		RepeatCycle:  model.RepeatCycleWeekly,
		EditOption:   model.EditOptionAllSchedules,
	}
	_, err := s.EditRepeatSchedule(context.Background(), 999, edit, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrScheduleNotFound)
}

func TestEditRepeatScheduleConflict(t *testing.T) {
	s, st := newTestService(t)

	created := createRepeat(t, s, leaderParticipantID)

	// Another writer bumps the row between our read and our update.
	st.beforeUpdateRepeat = func() { st.repeats[created.ID].Version++ }

	edit := &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{TeamID: testTeamID},
		RepeatCycle:  model.RepeatCycleWeekly,
		EditOption:   model.EditOptionAllSchedules,
	}
	_, err := s.EditRepeatSchedule(context.Background(), created.ID, edit, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestConvertRoundTrip(t *testing.T) {
	s, st := newTestService(t)

	info := testScheduleCreate(leaderParticipantID, leaderParticipantID, mateParticipantID)
	simple, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	toRepeat := &model.SimpleToRepeatEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          testTeamID,
			ParticipantsIDs: []int64{leaderParticipantID, mateParticipantID},
		},
		RepeatCycle: model.RepeatCycleYearly,
	}
	// The mate converts; creator identity must survive both hops.
	repeat, err := s.ConvertSimpleToRepeat(context.Background(), simple.ID, toRepeat, mateMemberID)
	require.NoError(t, err)

	assert.NotContains(t, st.simples, simple.ID, "source row removed")
	assert.Equal(t, repeat.ID, repeat.OriginRepeatScheduleID)
	assert.Equal(t, model.RepeatCycleYearly, repeat.Recurrence.Cycle)
	assert.Equal(t, "MARCH", repeat.Recurrence.Month)
	assert.Equal(t, 15, repeat.Recurrence.Day)

	toSimple := &model.RepeatToSimpleEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          testTeamID,
			ParticipantsIDs: []int64{leaderParticipantID, mateParticipantID},
		},
	}
	back, err := s.ConvertRepeatToSimple(context.Background(), repeat.ID, toSimple, mateMemberID)
	require.NoError(t, err)

	assert.NotContains(t, st.repeats, repeat.ID)
	assert.True(t, back.Converted)
	assert.Equal(t, simple.Title, back.Title)
	assert.Equal(t, simple.Content, back.Content)
	assert.Equal(t, simple.Place, back.Place)
	assert.Equal(t, simple.Color, back.Color)
	assert.Equal(t, simple.CreateParticipantID, back.CreateParticipantID)
	assert.Equal(t, []int64{leaderParticipantID, mateParticipantID}, st.simpleAssignments[back.ID])
}

func TestConvertSimpleToRepeatInvalidCycle(t *testing.T) {
	s, st := newTestService(t)

	info := testScheduleCreate(leaderParticipantID)
	simple, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	toRepeat := &model.SimpleToRepeatEdit{
		ScheduleEdit: model.ScheduleEdit{TeamID: testTeamID},
		RepeatCycle:  model.RepeatCycle(42),
	}
	_, err = s.ConvertSimpleToRepeat(context.Background(), simple.ID, toRepeat, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrInvalidRepeatCycle)
	assert.Contains(t, st.simples, simple.ID, "source row survives a failed conversion")
}

func TestDeleteSimpleSchedule(t *testing.T) {
	tests := []struct {
		name          string
		creatorID     int64
		memberID      int64
		creatorLeaves bool
		wantErr       error
	}{
		{
			name:      "ordinary creator deletes own schedule",
			creatorID: mateParticipantID,
			memberID:  mateMemberID,
		},
		{
			name:      "ordinary non-creator rejected",
			creatorID: otherParticipantID,
			memberID:  mateMemberID,
			wantErr:   model.ErrCreatorMismatch,
		},
		{
			name:      "leader blocked while creator stays in team",
			creatorID: mateParticipantID,
			memberID:  leaderMemberID,
			wantErr:   model.ErrCreatorStillExists,
		},
		{
			name:          "leader allowed once creator left",
			creatorID:     mateParticipantID,
			memberID:      leaderMemberID,
			creatorLeaves: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService(t)

			info := testScheduleCreate(tt.creatorID, otherParticipantID)
			creatorMember := st.participants[tt.creatorID].MemberID
			created, err := s.CreateSimpleSchedule(context.Background(), &info, creatorMember)
			require.NoError(t, err)

			if tt.creatorLeaves {
				delete(st.participants, tt.creatorID)
			}

			req := &model.ScheduleDelete{ScheduleID: created.ID, TeamID: testTeamID}
			res, err := s.DeleteSimpleSchedule(context.Background(), req, tt.memberID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, st.simples, created.ID, "rejected deletion leaves the row")
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, st.simples, created.ID)
			assert.Equal(t, []int64{otherParticipantID}, res.ParticipantsIDs)
			assert.Equal(t, created.Title, res.Title)
		})
	}
}

func TestDeleteRepeatSchedule(t *testing.T) {
	s, st := newTestService(t)

	created := createRepeat(t, s, mateParticipantID, otherParticipantID)

	req := &model.ScheduleDelete{ScheduleID: created.ID, TeamID: testTeamID}

	_, err := s.DeleteRepeatSchedule(context.Background(), req, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrCreatorStillExists)

	res, err := s.DeleteRepeatSchedule(context.Background(), req, mateMemberID)
	require.NoError(t, err)
	assert.NotContains(t, st.repeats, created.ID)
	assert.Equal(t, mateParticipantID, res.RequesterID)
	assert.Equal(t, []int64{otherParticipantID}, res.ParticipantsIDs)
}

func TestDeleteScheduleNotFound(t *testing.T) {
	s, _ := newTestService(t)

	req := &model.ScheduleDelete{ScheduleID: 999, TeamID: testTeamID}
	_, err := s.DeleteSimpleSchedule(context.Background(), req, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrScheduleNotFound)

	_, err = s.DeleteRepeatSchedule(context.Background(), req, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrScheduleNotFound)
}

func TestDecideDeletion(t *testing.T) {
	leader := &model.Participant{ID: 1, ParticipantCreate: model.ParticipantCreate{Role: model.RoleLeader}}
	mate := &model.Participant{ID: 2, ParticipantCreate: model.ParticipantCreate{Role: model.RoleMate}}

	assert.NoError(t, decideDeletion(mate, 2, true), "creator always deletes own schedule")
	assert.NoError(t, decideDeletion(leader, 1, true), "privileged creator deletes own schedule")
	assert.ErrorIs(t, decideDeletion(mate, 3, true), model.ErrCreatorMismatch)
	assert.ErrorIs(t, decideDeletion(leader, 3, true), model.ErrCreatorStillExists)
	assert.NoError(t, decideDeletion(leader, 3, false), "leader may clean up after the creator left")
}

func TestMonthlySchedules(t *testing.T) {
	s, _ := newTestService(t)

	repeat := createRepeat(t, s, leaderParticipantID, leaderParticipantID)

	info := testScheduleCreate(mateParticipantID, mateParticipantID, otherParticipantID)
	simple, err := s.CreateSimpleSchedule(context.Background(), &info, mateMemberID)
	require.NoError(t, err)

	views, err := s.MonthlySchedules(context.Background(), testTeamID, nil, leaderMemberID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Repeat schedules come first in the merged view.
	assert.Equal(t, model.ScheduleTypeRepeat, views[0].Type)
	assert.Equal(t, repeat.ID, views[0].ID)
	assert.Equal(t, model.ScheduleTypeSimple, views[1].Type)
	assert.Equal(t, simple.ID, views[1].ID)

	require.NotNil(t, views[1].Category)
	assert.Equal(t, testCategoryID, views[1].Category.ID)
	require.Len(t, views[1].Participants, 2)
	assert.Equal(t, mateParticipantID, views[1].Participants[0].ID)
	assert.Equal(t, model.RoleMate, views[1].Participants[0].Role)
}

func TestMonthlySchedulesCategoryTypeFilter(t *testing.T) {
	s, st := newTestService(t)

	st.addCategory(4, testTeamID, model.CategoryTypeTodo)

	info := testScheduleCreate(leaderParticipantID)
	_, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	todo := testScheduleCreate(leaderParticipantID)
	todo.CategoryID = 4
	todoSchedule, err := s.CreateSimpleSchedule(context.Background(), &todo, leaderMemberID)
	require.NoError(t, err)

	typ := model.CategoryTypeTodo
	views, err := s.MonthlySchedules(context.Background(), testTeamID, &typ, leaderMemberID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, todoSchedule.ID, views[0].ID)
}

func TestMonthlySchedulesRequesterNotInTeam(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.MonthlySchedules(context.Background(), testTeamID, nil, int64(999))
	assert.ErrorIs(t, err, model.ErrParticipantNotFound)
}

func TestScheduleDetails(t *testing.T) {
	s, _ := newTestService(t)

	info := testScheduleCreate(leaderParticipantID, leaderParticipantID, mateParticipantID)
	simple, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	repeat := createRepeat(t, s, leaderParticipantID, mateParticipantID)

	gotSimple, err := s.SimpleScheduleDetail(context.Background(), simple.ID, testTeamID, mateMemberID)
	require.NoError(t, err)
	assert.Equal(t, simple.ID, gotSimple.ID)
	assert.Equal(t, []int64{leaderParticipantID, mateParticipantID}, gotSimple.ParticipantsIDs)

	gotRepeat, err := s.RepeatScheduleDetail(context.Background(), repeat.ID, testTeamID, mateMemberID)
	require.NoError(t, err)
	assert.Equal(t, repeat.ID, gotRepeat.ID)
	assert.Equal(t, []int64{mateParticipantID}, gotRepeat.ParticipantsIDs)
}

func TestScheduleDetailWrongTeam(t *testing.T) {
	s, st := newTestService(t)

	info := testScheduleCreate(leaderParticipantID)
	simple, err := s.CreateSimpleSchedule(context.Background(), &info, leaderMemberID)
	require.NoError(t, err)

	st.addTeam(2, "other team")
	st.addParticipant(60, 2, leaderMemberID, model.RoleLeader)

	_, err = s.SimpleScheduleDetail(context.Background(), simple.ID, 2, leaderMemberID)
	assert.ErrorIs(t, err, model.ErrScheduleNotFound)
}

func createRepeat(t *testing.T, s *Service, creatorID int64, participantsIDs ...int64) *model.RepeatSchedule {
	t.Helper()

	info := &model.RepeatScheduleCreate{
		RepeatCycle:    model.RepeatCycleWeekly,
		ScheduleCreate: testScheduleCreate(creatorID, participantsIDs...),
	}
	created, err := s.CreateRepeatSchedule(context.Background(), info, leaderMemberID)
	require.NoError(t, err)
	return created
}
