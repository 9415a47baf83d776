package schedule

import (
	"time"

	"github.com/teamplan/team-calendar-backend/internal/model"
)

type simpleScheduleDTO struct {
	ID                  int64
	TeamID              int64
	CategoryID          int64
	Title               string
	Content             string
	Place               string
	StartDt             time.Time
	EndDt               time.Time
	Color               string
	CreateParticipantID int64
	Converted           bool
}

func mapToSimpleSchedule(d *simpleScheduleDTO) *model.SimpleSchedule {
	return &model.SimpleSchedule{
		ID:        d.ID,
		Converted: d.Converted,
		ScheduleCreate: model.ScheduleCreate{
			TeamID:              d.TeamID,
			CategoryID:          d.CategoryID,
			Title:               d.Title,
			Content:             d.Content,
			Place:               d.Place,
			StartDt:             d.StartDt,
			EndDt:               d.EndDt,
			Color:               d.Color,
			CreateParticipantID: d.CreateParticipantID,
		},
	}
}

type repeatScheduleDTO struct {
	ID                     int64
	TeamID                 int64
	CategoryID             int64
	Title                  string
	Content                string
	Place                  string
	StartDt                time.Time
	EndDt                  time.Time
	Color                  string
	CreateParticipantID    int64
	RepeatCycle            int
	DayOfWeek              *string
	Day                    *int
	Month                  *string
	OriginRepeatScheduleID int64
	Version                int64
}

func mapToRepeatSchedule(d *repeatScheduleDTO) *model.RepeatSchedule {
	recurrence := model.Recurrence{Cycle: model.RepeatCycle(d.RepeatCycle)}
	if d.DayOfWeek != nil {
		recurrence.DayOfWeek = *d.DayOfWeek
	}
	if d.Day != nil {
		recurrence.Day = *d.Day
	}
	if d.Month != nil {
		recurrence.Month = *d.Month
	}

	return &model.RepeatSchedule{
		ID:                     d.ID,
		OriginRepeatScheduleID: d.OriginRepeatScheduleID,
		Version:                d.Version,
		Recurrence:             recurrence,
		ScheduleCreate: model.ScheduleCreate{
			TeamID:              d.TeamID,
			CategoryID:          d.CategoryID,
			Title:               d.Title,
			Content:             d.Content,
			Place:               d.Place,
			StartDt:             d.StartDt,
			EndDt:               d.EndDt,
			Color:               d.Color,
			CreateParticipantID: d.CreateParticipantID,
		},
	}
}

// recurrenceColumns spreads the recurrence value over the three nullable columns.
func recurrenceColumns(r model.Recurrence) (dayOfWeek *string, day *int, month *string) {
	if r.DayOfWeek != "" {
		v := r.DayOfWeek
		dayOfWeek = &v
	}
	if r.Day != 0 {
		v := r.Day
		day = &v
	}
	if r.Month != "" {
		v := r.Month
		month = &v
	}
	return dayOfWeek, day, month
}
