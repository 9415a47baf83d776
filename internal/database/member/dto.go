package member

import (
	"github.com/teamplan/team-calendar-backend/internal/model"
)

type memberDTO struct {
	ID       int64
	FullName string
	Email    string
	Photo    string
}

func mapToMember(dto *memberDTO) *model.Member {
	return &model.Member{
		ID: dto.ID,
		MemberCreate: model.MemberCreate{
			FullName: dto.FullName,
			Email:    dto.Email,
			Photo:    dto.Photo,
		},
	}
}
