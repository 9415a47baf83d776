package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// Not-found failures.
var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrCategoryNotFound    = errors.New("schedule category not found")
	ErrParticipantNotFound = errors.New("team participant not found")
	ErrScheduleNotFound    = errors.New("schedule not found")
)

// Validation failures.
var (
	ErrDuplicateParticipant    = errors.New("duplicate team participant id")
	ErrParticipantTeamMismatch = errors.New("participant belongs to another team")
	ErrInvalidRepeatCycle      = errors.New("unknown repeat cycle")
	ErrInvalidEditOption       = errors.New("unknown edit option")
	ErrInvalidCategoryType     = errors.New("unknown category type")
)

// Authorization failures.
var (
	ErrCreatorStillExists = errors.New("schedule creator still belongs to the team")
	ErrCreatorMismatch    = errors.New("requester is not the schedule creator")
)

// ErrConflict reports a lost optimistic lock on a repeat schedule row.
var ErrConflict = errors.New("concurrent modification")
