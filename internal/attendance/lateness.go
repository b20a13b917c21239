package attendance

import (
	"checkrrhh-backend/internal/model"
	"time"
)

const clockLayout = "15:04"

// Policy holds the tunables of the resolver.
type Policy struct {
	Grace time.Duration
	Mode  InferenceMode
}

// Schedule is the employee's planned day, zero-padded "HH:MM".
type Schedule struct {
	Start    string
	End      string
	LunchOut string
	LunchIn  string
}

func ScheduleOf(u *model.User) Schedule {
	return Schedule{
		Start:    u.StartTime,
		End:      u.EndTime,
		LunchOut: u.LunchOutTime,
		LunchIn:  u.LunchInTime,
	}
}

// Lateness flags an entry made after start+grace. Other kinds, and days
// without a readable start time, are always normal.
func Lateness(kind model.EventKind, at, start string, grace time.Duration) model.EventStatus {
	if kind != model.KindEntry {
		return model.StatusNormal
	}
	atTime, err := time.Parse(clockLayout, at)
	if err != nil {
		return model.StatusNormal
	}
	startTime, err := time.Parse(clockLayout, start)
	if err != nil {
		return model.StatusNormal
	}
	if atTime.After(startTime.Add(grace)) {
		return model.StatusLate
	}
	return model.StatusNormal
}

// Decision is the outcome of resolving one scan.
type Decision struct {
	Kind   model.EventKind
	Status model.EventStatus
}

// Resolve picks the kind and status of the next mark given today's events.
func Resolve(today []model.AttendanceEvent, at string, schedule Schedule, policy Policy) (Decision, error) {
	kind, err := Next(ProgressOf(today, policy.Mode))
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Kind:   kind,
		Status: Lateness(kind, at, schedule.Start, policy.Grace),
	}, nil
}

// Clock formats t as the "HH:MM" wall-clock string stored on events.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// Day formats t as the local calendar date stored on events.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}
