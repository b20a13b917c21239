package report

import (
	"checkrrhh-backend/internal/model"
	"sort"
)

const recentLimit = 5

type Summary struct {
	Date      string                  `json:"date"`
	Entries   int                     `json:"entries"`
	Late      int                     `json:"late"`
	LunchOuts int                     `json:"lunch_outs"`
	Exits     int                     `json:"exits"`
	Absences  int                     `json:"absences"`
	Recent    []model.AttendanceEvent `json:"recent"`
}

// Summarize counts the marks of one day, newest five kept in Recent.
func Summarize(events []model.AttendanceEvent, date string) Summary {
	s := Summary{Date: date}
	day := FilterEvents(events, Filter{Date: date})
	for _, e := range day {
		switch e.Kind {
		case model.KindEntry:
			s.Entries++
		case model.KindLunchOut:
			s.LunchOuts++
		case model.KindExit:
			s.Exits++
		case model.KindAbsence:
			s.Absences++
		}
		if e.Status == model.StatusLate {
			s.Late++
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		if day[i].Time != day[j].Time {
			return day[i].Time > day[j].Time
		}
		return day[i].ID > day[j].ID
	})
	if len(day) > recentLimit {
		day = day[:recentLimit]
	}
	s.Recent = day
	return s
}
