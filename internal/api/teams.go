package api

import (
	"fmt"
	"net/http"

	"github.com/teamplan/team-calendar-backend/internal/config"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"github.com/teamplan/team-calendar-backend/internal/pkg/validator"
)

func (a *Api) createTeamHandler(w http.ResponseWriter, r *http.Request) {
	memberID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Name        string `json:"name"`
		MemberLimit int    `json:"member_limit"`
		ProfileURL  string `json:"profile_url"`
		Nickname    string `json:"nickname"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	v.Check(len(req.Name) != 0, "name", "name must be provided")
	v.Check(req.MemberLimit > 0, "member_limit", "member limit must be positive")
	v.Check(len(req.Nickname) != 0, "nickname", "nickname must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	inviteLink, err := a.generateRandomString(config.InviteLinkLength())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("generate invite link: %w", err))
		return
	}

	tx, err := a.db.BeginTx(r.Context(), nil)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("tx begin: %w", err))
		return
	}
	defer tx.Rollback(r.Context())

	teamCreate := &model.TeamCreate{
		Name:        req.Name,
		MemberLimit: req.MemberLimit,
		ProfileURL:  req.ProfileURL,
	}
	teamID, err := a.teams.CreateTeam(r.Context(), tx, teamCreate)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create team: %w", err))
		return
	}

	if err := a.teams.SetInviteLink(r.Context(), tx, teamID, inviteLink); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("set invite link: %w", err))
		return
	}

	// The founding member joins as the team leader.
	if _, err := a.teams.AddParticipant(r.Context(), tx, &model.ParticipantCreate{
		TeamID:   teamID,
		MemberID: memberID,
		Nickname: req.Nickname,
		Role:     model.RoleLeader,
	}); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("add participant: %w", err))
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("commit tx: %w", err))
		return
	}

	resp := &struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		InviteLink string `json:"invite_link"`
	}{
		ID:         teamID,
		Name:       req.Name,
		InviteLink: inviteLink,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
