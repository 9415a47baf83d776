package model

import (
	"strings"
	"time"
)

type RepeatCycle int

const (
	RepeatCycleWeekly RepeatCycle = iota
	RepeatCycleMonthly
	RepeatCycleYearly
)

func (c RepeatCycle) String() string {
	switch c {
	case RepeatCycleWeekly:
		return "WEEKLY"
	case RepeatCycleMonthly:
		return "MONTHLY"
	case RepeatCycleYearly:
		return "YEARLY"
	default:
		return "UNKNOWN"
	}
}

func ParseRepeatCycle(s string) (RepeatCycle, error) {
	switch s {
	case "WEEKLY":
		return RepeatCycleWeekly, nil
	case "MONTHLY":
		return RepeatCycleMonthly, nil
	case "YEARLY":
		return RepeatCycleYearly, nil
	default:
		return 0, ErrInvalidRepeatCycle
	}
}

// Recurrence carries only the fields its cycle uses; the other fields stay
// zero. Values are built through RecurrenceFor so an inconsistent combination
// cannot exist.
type Recurrence struct {
	Cycle     RepeatCycle
	DayOfWeek string // weekly, e.g. "FRIDAY"
	Day       int    // monthly and yearly
	Month     string // yearly, e.g. "MARCH"
}

// RecurrenceFor derives the cycle-dependent fields from the start timestamp.
func RecurrenceFor(cycle RepeatCycle, start time.Time) (Recurrence, error) {
	switch cycle {
	case RepeatCycleWeekly:
		return Recurrence{
			Cycle:     cycle,
			DayOfWeek: strings.ToUpper(start.Weekday().String()),
		}, nil
	case RepeatCycleMonthly:
		return Recurrence{
			Cycle: cycle,
			Day:   start.Day(),
		}, nil
	case RepeatCycleYearly:
		return Recurrence{
			Cycle: cycle,
			Month: strings.ToUpper(start.Month().String()),
			Day:   start.Day(),
		}, nil
	default:
		return Recurrence{}, ErrInvalidRepeatCycle
	}
}

// EditOption scopes a repeat schedule edit.
type EditOption int

const (
	EditOptionThisSchedule EditOption = iota
	EditOptionThisAndFuture
	EditOptionAllSchedules
)

func (o EditOption) String() string {
	switch o {
	case EditOptionThisSchedule:
		return "THIS_SCHEDULE"
	case EditOptionThisAndFuture:
		return "THIS_AND_FUTURE"
	case EditOptionAllSchedules:
		return "ALL_SCHEDULES"
	default:
		return "UNKNOWN"
	}
}

func ParseEditOption(s string) (EditOption, error) {
	switch s {
	case "THIS_SCHEDULE":
		return EditOptionThisSchedule, nil
	case "THIS_AND_FUTURE":
		return EditOptionThisAndFuture, nil
	case "ALL_SCHEDULES":
		return EditOptionAllSchedules, nil
	default:
		return 0, ErrInvalidEditOption
	}
}

type ScheduleCreate struct {
	TeamID              int64
	CategoryID          int64
	Title               string
	Content             string
	Place               string
	StartDt             time.Time
	EndDt               time.Time
	Color               string
	CreateParticipantID int64
	ParticipantsIDs     []int64
}

type SimpleSchedule struct {
	ID int64
	// Converted marks a one-off produced from a repeat series.
	Converted bool
	ScheduleCreate
}

type RepeatScheduleCreate struct {
	RepeatCycle RepeatCycle
	ScheduleCreate
}

type RepeatSchedule struct {
	ID int64
	// OriginRepeatScheduleID links a split row back to its series root.
	OriginRepeatScheduleID int64
	Version                int64
	Recurrence             Recurrence
	ScheduleCreate
}

// SchedulePatch is a sparse edit: a nil field keeps the current value.
type SchedulePatch struct {
	CategoryID *int64
	Title      *string
	Content    *string
	Place      *string
	StartDt    *time.Time
	EndDt      *time.Time
	Color      *string
}

// Apply returns a copy of s with the non-nil patch fields replaced.
func (p SchedulePatch) Apply(s ScheduleCreate) ScheduleCreate {
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.Place != nil {
		s.Place = *p.Place
	}
	if p.StartDt != nil {
		s.StartDt = *p.StartDt
	}
	if p.EndDt != nil {
		s.EndDt = *p.EndDt
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	return s
}

// ScheduleEdit carries a sparse patch plus the full replacement assignment list.
type ScheduleEdit struct {
	TeamID          int64
	Patch           SchedulePatch
	ParticipantsIDs []int64
}

type RepeatScheduleEdit struct {
	ScheduleEdit
	RepeatCycle RepeatCycle
	EditOption  EditOption
}

type SimpleToRepeatEdit struct {
	ScheduleEdit
	RepeatCycle RepeatCycle
}

type RepeatToSimpleEdit struct {
	ScheduleEdit
}

type ScheduleDelete struct {
	ScheduleID int64
	TeamID     int64
}

// ScheduleDeleteResult is what a caller needs to notify previously assigned
// participants; delivery itself happens outside the engine.
type ScheduleDeleteResult struct {
	RequesterID     int64
	ParticipantsIDs []int64
	Title           string
	Message         string
}

type ScheduleType int

const (
	ScheduleTypeSimple ScheduleType = iota
	ScheduleTypeRepeat
)

func (t ScheduleType) String() string {
	switch t {
	case ScheduleTypeSimple:
		return "SIMPLE"
	case ScheduleTypeRepeat:
		return "REPEAT"
	default:
		return "UNKNOWN"
	}
}

type ParticipantView struct {
	ID       int64
	Nickname string
	Role     Role
}

// ScheduleView is the unified monthly-view read model.
type ScheduleView struct {
	ID           int64
	Type         ScheduleType
	Title        string
	StartDt      time.Time
	EndDt        time.Time
	Category     *Category
	Participants []ParticipantView
}
