package api

import (
	"errors"
	"net/http"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

var errCantRetrieveMember = errors.New("can't retrieve member")

type memberResp struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

func mapToMemberResp(member *model.Member) (*memberResp, error) {
	return &memberResp{
		ID:       member.ID,
		FullName: member.FullName,
		Email:    member.Email,
		Photo:    member.Photo,
	}, nil
}

func (a *Api) getMemberHandler(w http.ResponseWriter, r *http.Request) {
	member, ok := r.Context().Value(contextKeyMember).(*model.Member)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveMember)
		return
	}

	resp, err := mapToMemberResp(member)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
