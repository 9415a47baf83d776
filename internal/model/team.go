package model

import "time"

type TeamCreate struct {
	Name        string
	MemberLimit int
	ProfileURL  string
}

type Team struct {
	ID         int64
	InviteLink string
	// Soft-delete lifecycle: a deleted team keeps its rows until RestorationDt passes.
	IsDelete      bool
	RestorationDt *time.Time
	TeamCreate
}

// Role is the team-level role a participant carries.
type Role int

const (
	RoleLeader Role = iota
	RoleMate
)

// Privileged reports whether the role may act on schedules it did not create.
// Only the two-way privileged/ordinary split matters to the schedule engine.
func (r Role) Privileged() bool {
	return r == RoleLeader
}

func (r Role) String() string {
	switch r {
	case RoleLeader:
		return "LEADER"
	case RoleMate:
		return "MATE"
	default:
		return "UNKNOWN"
	}
}

type ParticipantCreate struct {
	TeamID   int64
	MemberID int64
	Nickname string
	Role     Role
}

// Participant is one member's membership record within one team.
type Participant struct {
	ID int64
	ParticipantCreate
}
