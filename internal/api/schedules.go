package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/teamplan/team-calendar-backend/internal/pkg/validator"
)

type simpleScheduleResp struct {
	ID                  int64    `json:"id"`
	Converted           bool     `json:"converted"`
	CategoryID          int64    `json:"category_id"`
	Title               string   `json:"title"`
	Content             string   `json:"content,omitempty"`
	Place               string   `json:"place,omitempty"`
	StartDt             dateTime `json:"start_dt"`
	EndDt               dateTime `json:"end_dt"`
	Color               string   `json:"color"`
	CreateParticipantID int64    `json:"create_participant_id"`
	ParticipantsIDs     []int64  `json:"participants_ids"`
}

func mapToSimpleScheduleResp(s *model.SimpleSchedule) (*simpleScheduleResp, error) {
	return &simpleScheduleResp{
		ID:                  s.ID,
		Converted:           s.Converted,
		CategoryID:          s.CategoryID,
		Title:               s.Title,
		Content:             s.Content,
		Place:               s.Place,
		StartDt:             dateTime(s.StartDt),
		EndDt:               dateTime(s.EndDt),
		Color:               s.Color,
		CreateParticipantID: s.CreateParticipantID,
		ParticipantsIDs:     s.ParticipantsIDs,
	}, nil
}

type repeatScheduleResp struct {
	ID                     int64    `json:"id"`
	OriginRepeatScheduleID int64    `json:"origin_repeat_schedule_id"`
	RepeatCycle            string   `json:"repeat_cycle"`
	DayOfWeek              string   `json:"day_of_week,omitempty"`
	Day                    int      `json:"day,omitempty"`
	Month                  string   `json:"month,omitempty"`
	CategoryID             int64    `json:"category_id"`
	Title                  string   `json:"title"`
	Content                string   `json:"content,omitempty"`
	Place                  string   `json:"place,omitempty"`
	StartDt                dateTime `json:"start_dt"`
	EndDt                  dateTime `json:"end_dt"`
	Color                  string   `json:"color"`
	CreateParticipantID    int64    `json:"create_participant_id"`
	ParticipantsIDs        []int64  `json:"participants_ids"`
}

func mapToRepeatScheduleResp(s *model.RepeatSchedule) (*repeatScheduleResp, error) {
	return &repeatScheduleResp{
		ID:                     s.ID,
		OriginRepeatScheduleID: s.OriginRepeatScheduleID,
		RepeatCycle:            s.Recurrence.Cycle.String(),
		DayOfWeek:              s.Recurrence.DayOfWeek,
		Day:                    s.Recurrence.Day,
		Month:                  s.Recurrence.Month,
		CategoryID:             s.CategoryID,
		Title:                  s.Title,
		Content:                s.Content,
		Place:                  s.Place,
		StartDt:                dateTime(s.StartDt),
		EndDt:                  dateTime(s.EndDt),
		Color:                  s.Color,
		CreateParticipantID:    s.CreateParticipantID,
		ParticipantsIDs:        s.ParticipantsIDs,
	}, nil
}

type participantResp struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type scheduleViewResp struct {
	ID           int64             `json:"id"`
	ScheduleType string            `json:"schedule_type"`
	Title        string            `json:"title"`
	StartDt      dateTime          `json:"start_dt"`
	EndDt        dateTime          `json:"end_dt"`
	Category     *categoryResp     `json:"category"`
	Participants []participantResp `json:"participants"`
}

func mapToScheduleViewResp(v *model.ScheduleView) (*scheduleViewResp, error) {
	category, err := mapToCategoryResp(v.Category)
	if err != nil {
		return nil, err
	}

	participants := make([]participantResp, len(v.Participants))
	for i, p := range v.Participants {
		participants[i] = participantResp{
			ID:       p.ID,
			Nickname: p.Nickname,
			Role:     p.Role.String(),
		}
	}

	return &scheduleViewResp{
		ID:           v.ID,
		ScheduleType: v.Type.String(),
		Title:        v.Title,
		StartDt:      dateTime(v.StartDt),
		EndDt:        dateTime(v.EndDt),
		Category:     category,
		Participants: participants,
	}, nil
}

type scheduleCreateRequest struct {
	CategoryID      int64    `json:"category_id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Place           string   `json:"place"`
	StartDt         dateTime `json:"start_dt"`
	EndDt           dateTime `json:"end_dt"`
	Color           string   `json:"color"`
	ParticipantsIDs []int64  `json:"participants_ids"`
}

func (req *scheduleCreateRequest) validate(v *validator.Validator) {
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.StartDt).IsZero(), "start_dt", "start_dt must be provided")
	v.Check(!time.Time(req.EndDt).IsZero(), "end_dt", "end_dt must be provided")
	v.Check(!time.Time(req.EndDt).Before(time.Time(req.StartDt)), "end_dt", "end_dt must not precede start_dt")
	v.Check(validator.Matches(req.Color, validator.HexRX), "color", "color must be valid HEX color")
}

type schedulePatchRequest struct {
	CategoryID      *int64    `json:"category_id"`
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Place           *string   `json:"place"`
	StartDt         *dateTime `json:"start_dt"`
	EndDt           *dateTime `json:"end_dt"`
	Color           *string   `json:"color"`
	ParticipantsIDs []int64   `json:"participants_ids"`
}

// toPatch keeps the sparse shape of the request: absent JSON keys stay nil and
// leave the stored values untouched.
func (req *schedulePatchRequest) toPatch(v *validator.Validator) model.SchedulePatch {
	patch := model.SchedulePatch{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
		Place:      req.Place,
		Color:      req.Color,
	}

	if req.Title != nil {
		v.Check(len(*req.Title) != 0, "title", "title must not be empty")
	}
	if req.Color != nil {
		v.Check(validator.Matches(*req.Color, validator.HexRX), "color", "color must be valid HEX color")
	}
	if req.StartDt != nil {
		t := time.Time(*req.StartDt)
		patch.StartDt = &t
	}
	if req.EndDt != nil {
		t := time.Time(*req.EndDt)
		patch.EndDt = &t
	}

	return patch
}

func (a *Api) requestParticipant(r *http.Request) (*model.Team, *model.Participant, error) {
	memberID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		return nil, nil, errCantRetrieveID
	}

	team, ok := r.Context().Value(contextKeyTeam).(*model.Team)
	if !ok {
		return nil, nil, errCantRetrieveTeam
	}

	participant, err := a.teams.GetParticipant(r.Context(), a.db, team.ID, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("get participant: %w", err)
	}

	return team, participant, nil
}

func scheduleIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "scheduleID"), 10, 64)
}

func (a *Api) createSimpleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	req := &scheduleCreateRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	req.validate(v)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.CreateSimpleSchedule(r.Context(), &model.ScheduleCreate{
		TeamID:              team.ID,
		CategoryID:          req.CategoryID,
		Title:               req.Title,
		Content:             req.Content,
		Place:               req.Place,
		StartDt:             time.Time(req.StartDt),
		EndDt:               time.Time(req.EndDt),
		Color:               req.Color,
		CreateParticipantID: participant.ID,
		ParticipantsIDs:     req.ParticipantsIDs,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToSimpleScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createRepeatScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	req := &struct {
		scheduleCreateRequest
		RepeatCycle string `json:"repeat_cycle"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	req.validate(v)

	cycle, err := model.ParseRepeatCycle(req.RepeatCycle)
	v.Check(err == nil, "repeat_cycle", "repeat cycle must be WEEKLY, MONTHLY or YEARLY")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.CreateRepeatSchedule(r.Context(), &model.RepeatScheduleCreate{
		RepeatCycle: cycle,
		ScheduleCreate: model.ScheduleCreate{
			TeamID:              team.ID,
			CategoryID:          req.CategoryID,
			Title:               req.Title,
			Content:             req.Content,
			Place:               req.Place,
			StartDt:             time.Time(req.StartDt),
			EndDt:               time.Time(req.EndDt),
			Color:               req.Color,
			CreateParticipantID: participant.ID,
			ParticipantsIDs:     req.ParticipantsIDs,
		},
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToRepeatScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) editSimpleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &schedulePatchRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	patch := req.toPatch(v)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.EditSimpleSchedule(r.Context(), scheduleID, &model.ScheduleEdit{
		TeamID:          team.ID,
		Patch:           patch,
		ParticipantsIDs: req.ParticipantsIDs,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToSimpleScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) editRepeatScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &struct {
		schedulePatchRequest
		RepeatCycle string `json:"repeat_cycle"`
		EditOption  string `json:"edit_option"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	patch := req.toPatch(v)

	cycle, err := model.ParseRepeatCycle(req.RepeatCycle)
	v.Check(err == nil, "repeat_cycle", "repeat cycle must be WEEKLY, MONTHLY or YEARLY")

	option, err := model.ParseEditOption(req.EditOption)
	v.Check(err == nil, "edit_option", "edit option must be THIS_SCHEDULE, THIS_AND_FUTURE or ALL_SCHEDULES")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.EditRepeatSchedule(r.Context(), scheduleID, &model.RepeatScheduleEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          team.ID,
			Patch:           patch,
			ParticipantsIDs: req.ParticipantsIDs,
		},
		RepeatCycle: cycle,
		EditOption:  option,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToRepeatScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) convertSimpleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &struct {
		schedulePatchRequest
		RepeatCycle string `json:"repeat_cycle"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	patch := req.toPatch(v)

	cycle, err := model.ParseRepeatCycle(req.RepeatCycle)
	v.Check(err == nil, "repeat_cycle", "repeat cycle must be WEEKLY, MONTHLY or YEARLY")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.ConvertSimpleToRepeat(r.Context(), scheduleID, &model.SimpleToRepeatEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          team.ID,
			Patch:           patch,
			ParticipantsIDs: req.ParticipantsIDs,
		},
		RepeatCycle: cycle,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToRepeatScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) convertRepeatScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &schedulePatchRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	patch := req.toPatch(v)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.ConvertRepeatToSimple(r.Context(), scheduleID, &model.RepeatToSimpleEdit{
		ScheduleEdit: model.ScheduleEdit{
			TeamID:          team.ID,
			Patch:           patch,
			ParticipantsIDs: req.ParticipantsIDs,
		},
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToSimpleScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteSimpleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	res, err := a.schedules.DeleteSimpleSchedule(r.Context(), &model.ScheduleDelete{
		ScheduleID: scheduleID,
		TeamID:     team.ID,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	a.notifier.ScheduleDeleted(res)
	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteRepeatScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	res, err := a.schedules.DeleteRepeatSchedule(r.Context(), &model.ScheduleDelete{
		ScheduleID: scheduleID,
		TeamID:     team.ID,
	}, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	a.notifier.ScheduleDeleted(res)
	w.WriteHeader(http.StatusOK)
}

func (a *Api) getMonthlySchedulesHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	categoryType, err := parseCategoryTypeQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	views, err := a.schedules.MonthlySchedules(r.Context(), team.ID, categoryType, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(views, mapToScheduleViewResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getSimpleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	schedule, err := a.schedules.SimpleScheduleDetail(r.Context(), scheduleID, team.ID, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToSimpleScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getRepeatScheduleHandler(w http.ResponseWriter, r *http.Request) {
	team, participant, err := a.requestParticipant(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	scheduleID, err := scheduleIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	schedule, err := a.schedules.RepeatScheduleDetail(r.Context(), scheduleID, team.ID, participant.MemberID)
	if err != nil {
		a.domainErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToRepeatScheduleResp(schedule)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func parseCategoryTypeQuery(r *http.Request) (*model.CategoryType, error) {
	v := r.URL.Query().Get("category_type")
	if v == "" {
		return nil, nil
	}

	categoryType, err := model.ParseCategoryType(v)
	if err != nil {
		return nil, fmt.Errorf("invalid category type %q", v)
	}

	return &categoryType, nil
}
