package team

import (
	"time"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

type teamDTO struct {
	ID            int64
	Name          string
	MemberLimit   int
	ProfileURL    string `db:"profile_url"`
	InviteLink    string
	IsDelete      bool
	RestorationDt *time.Time
}

func mapToTeam(d *teamDTO) *model.Team {
	return &model.Team{
		ID:            d.ID,
		InviteLink:    d.InviteLink,
		IsDelete:      d.IsDelete,
		RestorationDt: d.RestorationDt,
		TeamCreate: model.TeamCreate{
			Name:        d.Name,
			MemberLimit: d.MemberLimit,
			ProfileURL:  d.ProfileURL,
		},
	}
}

type participantDTO struct {
	ID       int64
	TeamID   int64
	MemberID int64
	Nickname string
	TeamRole int
}

func mapToParticipant(d *participantDTO) *model.Participant {
	return &model.Participant{
		ID: d.ID,
		ParticipantCreate: model.ParticipantCreate{
			TeamID:   d.TeamID,
			MemberID: d.MemberID,
			Nickname: d.Nickname,
			Role:     model.Role(d.TeamRole),
		},
	}
}
