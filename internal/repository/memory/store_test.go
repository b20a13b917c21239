package memory

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"errors"
	"testing"
)

func TestUserUniqueness(t *testing.T) {
	s := NewStore()
	token := "EMP-1-A"
	if err := s.Users().Create(&model.User{Name: "A", Email: "a@example.com", QRToken: &token}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Users().Create(&model.User{Name: "B", Email: "A@example.com"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("duplicate email: expected ErrDuplicate, got %v", err)
	}
	same := "EMP-1-A"
	if err := s.Users().Create(&model.User{Name: "C", Email: "c@example.com", QRToken: &same}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("duplicate token: expected ErrDuplicate, got %v", err)
	}
}

func TestAppendForDay(t *testing.T) {
	s := NewStore()
	u := &model.User{Name: "A", Email: "a@example.com"}
	if err := s.Users().Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}
	events := s.Attendance()

	var seen int
	decide := func(today []model.AttendanceEvent) (*model.AttendanceEvent, error) {
		seen = len(today)
		return &model.AttendanceEvent{UserID: u.ID, Date: "2026-03-02", Kind: model.KindEntry}, nil
	}
	if _, err := events.AppendForDay(u.ID, "2026-03-02", decide); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := events.AppendForDay(u.ID, "2026-03-02", decide); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("same kind twice: expected ErrDuplicate, got %v", err)
	}
	if seen != 1 {
		t.Fatalf("decide should see the stored entry, saw %d events", seen)
	}

	refuse := errors.New("refused")
	if _, err := events.AppendForDay(u.ID, "2026-03-03", func([]model.AttendanceEvent) (*model.AttendanceEvent, error) {
		return nil, refuse
	}); !errors.Is(err, refuse) {
		t.Fatalf("expected decide error, got %v", err)
	}
	if list, _ := events.GetByUserAndDate(u.ID, "2026-03-03"); len(list) != 0 {
		t.Fatalf("nothing stored when decide fails")
	}

	if _, err := events.AppendForDay(999, "2026-03-02", decide); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestAttachToEventJustifiesLate(t *testing.T) {
	s := NewStore()
	companyID := uint(5)
	e := &model.AttendanceEvent{UserID: 1, CompanyID: &companyID, Date: "2026-03-02", Kind: model.KindEntry, Status: model.StatusLate}
	if err := s.Attendance().Create(e); err != nil {
		t.Fatalf("create: %v", err)
	}

	a := &model.Attachment{EventID: e.ID, Kind: model.AttachmentJustification}
	updated, err := s.Attachments().AttachToEvent(a)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if updated.Status != model.StatusJustified || a.UserID != 1 || a.CompanyID == nil || *a.CompanyID != 5 {
		t.Fatalf("unexpected result %+v / %+v", updated, a)
	}
	if list, _ := s.Attachments().GetByCompanyID(5); len(list) != 1 {
		t.Fatalf("attachment should be tagged with the company")
	}
	if _, err := s.Attachments().AttachToEvent(&model.Attachment{EventID: 999}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown event: expected ErrNotFound, got %v", err)
	}
}
