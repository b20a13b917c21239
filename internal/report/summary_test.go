package report

import (
	"checkrrhh-backend/internal/model"
	"testing"
)

func TestSummarize(t *testing.T) {
	events := []model.AttendanceEvent{
		{Date: "2026-03-01", Kind: model.KindEntry, Time: "08:00", Status: model.StatusNormal},
		{Date: "2026-03-01", Kind: model.KindEntry, Time: "08:30", Status: model.StatusLate},
		{Date: "2026-03-01", Kind: model.KindLunchOut, Time: "12:00"},
		{Date: "2026-03-01", Kind: model.KindLunchIn, Time: "13:00"},
		{Date: "2026-03-01", Kind: model.KindExit, Time: "17:00"},
		{Date: "2026-03-01", Kind: model.KindAbsence},
		{Date: "2026-02-28", Kind: model.KindEntry, Time: "09:00", Status: model.StatusLate},
	}
	s := Summarize(events, "2026-03-01")
	if s.Entries != 2 || s.Late != 1 || s.LunchOuts != 1 || s.Exits != 1 || s.Absences != 1 {
		t.Fatalf("unexpected counters %+v", s)
	}
	if len(s.Recent) != recentLimit {
		t.Fatalf("expected %d recent events, got %d", recentLimit, len(s.Recent))
	}
	if s.Recent[0].Time != "17:00" {
		t.Fatalf("expected newest first, got %s", s.Recent[0].Time)
	}
}
