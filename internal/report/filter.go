// Package report narrows attendance events and renders them for export.
package report

import (
	"checkrrhh-backend/internal/model"
	"strings"
)

// Filter predicates are optional and combined with AND. A range (From or To
// set) takes precedence over Date.
type Filter struct {
	Date     string          `query:"date"`
	From     string          `query:"from"`
	To       string          `query:"to"`
	Employee string          `query:"employee"` // Name or badge, case-insensitive substring
	Kind     model.EventKind `query:"kind"`
}

func (f Filter) hasRange() bool {
	return f.From != "" || f.To != ""
}

func (f Filter) Match(e model.AttendanceEvent) bool {
	if f.hasRange() {
		if f.From != "" && e.Date < f.From {
			return false
		}
		if f.To != "" && e.Date > f.To {
			return false
		}
	} else if f.Date != "" && e.Date != f.Date {
		return false
	}

	if f.Employee != "" {
		needle := strings.ToLower(f.Employee)
		if !strings.Contains(strings.ToLower(e.UserName), needle) &&
			!strings.Contains(strings.ToLower(e.Badge), needle) {
			return false
		}
	}

	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	return true
}

// FilterEvents keeps the events matching f, preserving order.
func FilterEvents(events []model.AttendanceEvent, f Filter) []model.AttendanceEvent {
	out := make([]model.AttendanceEvent, 0, len(events))
	for _, e := range events {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
