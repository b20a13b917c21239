package model

import "gorm.io/gorm"

type EventKind string

const (
	KindEntry    EventKind = "entry"
	KindLunchOut EventKind = "lunch-out"
	KindLunchIn  EventKind = "lunch-in"
	KindExit     EventKind = "exit"
	KindAbsence  EventKind = "absence"
)

func (k EventKind) Valid() bool {
	switch k {
	case KindEntry, KindLunchOut, KindLunchIn, KindExit, KindAbsence:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusNormal    EventStatus = "normal"
	StatusLate      EventStatus = "late"
	StatusJustified EventStatus = "justified"
)

// AttendanceEvent is one kiosk mark. User and company fields are copied at
// scan time so reports survive renames.
type AttendanceEvent struct {
	gorm.Model
	UserID      uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_user_date_kind"`
	UserName    string      `json:"user_name"`
	Badge       string      `json:"badge"`
	CompanyID   *uint       `json:"company_id" gorm:"index"`
	CompanyName string      `json:"company_name"`
	Date        string      `json:"date" gorm:"size:10;not null;uniqueIndex:idx_user_date_kind"` // Format YYYY-MM-DD
	Kind        EventKind   `json:"kind" gorm:"size:16;not null;uniqueIndex:idx_user_date_kind"`
	Time        string      `json:"time" gorm:"size:5"` // Format HH:MM
	Status      EventStatus `json:"status" gorm:"size:16;default:normal"`

	AttachmentID *uint `json:"attachment_id"`
}
