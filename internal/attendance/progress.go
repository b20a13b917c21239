// Package attendance decides which mark a badge scan produces and whether it
// counts as late.
package attendance

import (
	"checkrrhh-backend/internal/model"
	"errors"
	"fmt"
	"strings"
)

var ErrAlreadyClockedOut = errors.New("already clocked out today")

// DailyProgress is how far an employee got through the working day.
type DailyProgress int

const (
	None DailyProgress = iota
	Entered
	OutToLunch
	BackFromLunch
	Exited
)

func (p DailyProgress) String() string {
	switch p {
	case None:
		return "none"
	case Entered:
		return "entered"
	case OutToLunch:
		return "out-to-lunch"
	case BackFromLunch:
		return "back-from-lunch"
	case Exited:
		return "exited"
	}
	return fmt.Sprintf("DailyProgress(%d)", int(p))
}

// Next returns the kind the next scan records from progress p.
func Next(p DailyProgress) (model.EventKind, error) {
	switch p {
	case None:
		return model.KindEntry, nil
	case Entered:
		return model.KindLunchOut, nil
	case OutToLunch:
		return model.KindLunchIn, nil
	case BackFromLunch:
		return model.KindExit, nil
	case Exited:
		return "", ErrAlreadyClockedOut
	}
	return "", fmt.Errorf("unknown progress %d", int(p))
}

// InferenceMode selects how progress is read from the day's marks.
type InferenceMode string

const (
	// SetMembership looks at which kinds exist, regardless of order.
	SetMembership InferenceMode = "set"
	// LastEvent follows the most recent mark only.
	LastEvent InferenceMode = "last"
)

func ParseInferenceMode(s string) (InferenceMode, error) {
	switch InferenceMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SetMembership:
		return SetMembership, nil
	case LastEvent:
		return LastEvent, nil
	}
	return "", fmt.Errorf("unknown inference mode %q", s)
}

// ProgressOf derives the day's progress from today's events, oldest first.
// Absence marks are ignored.
func ProgressOf(today []model.AttendanceEvent, mode InferenceMode) DailyProgress {
	if mode == LastEvent {
		for i := len(today) - 1; i >= 0; i-- {
			if p, ok := progressAfter(today[i].Kind); ok {
				return p
			}
		}
		return None
	}

	seen := make(map[model.EventKind]bool, len(today))
	for _, e := range today {
		seen[e.Kind] = true
	}
	switch {
	case !seen[model.KindEntry]:
		return None
	case !seen[model.KindLunchOut]:
		return Entered
	case !seen[model.KindLunchIn]:
		return OutToLunch
	case !seen[model.KindExit]:
		return BackFromLunch
	}
	return Exited
}

func progressAfter(k model.EventKind) (DailyProgress, bool) {
	switch k {
	case model.KindEntry:
		return Entered, true
	case model.KindLunchOut:
		return OutToLunch, true
	case model.KindLunchIn:
		return BackFromLunch, true
	case model.KindExit:
		return Exited, true
	}
	return None, false
}
