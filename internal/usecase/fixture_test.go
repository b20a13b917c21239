package usecase

import (
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository/memory"
	"context"
	"sync"
	"testing"
)

var (
	superAdmin = Actor{UserID: 9000, Role: model.RoleSuperAdmin}
	employee   = Actor{UserID: 9001, Role: model.RoleEmployee}
)

func adminOf(companyID uint) Actor {
	return Actor{UserID: 9002, Role: model.RoleCompanyAdmin, CompanyID: &companyID}
}

// recordingPublisher keeps every published subject.
type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(subject string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, s := range p.subjects {
		if s == subject {
			n++
		}
	}
	return n
}

func seedCompany(t *testing.T, s *memory.Store, name string) *model.Company {
	t.Helper()
	c := &model.Company{Name: name}
	if err := s.Companies().Create(c); err != nil {
		t.Fatalf("create company: %v", err)
	}
	return c
}

func seedEmployee(t *testing.T, s *memory.Store, companyID *uint, badge, token string) *model.User {
	t.Helper()
	u := &model.User{
		CompanyID:    companyID,
		Badge:        badge,
		Name:         "Employee " + badge,
		Email:        badge + "@example.com",
		Role:         model.RoleEmployee,
		StartTime:    "08:00",
		EndTime:      "17:00",
		LunchOutTime: "12:00",
		LunchInTime:  "13:00",
	}
	if token != "" {
		u.QRToken = &token
	}
	if err := s.Users().Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedEvent(t *testing.T, s *memory.Store, u *model.User, date string, kind model.EventKind, status model.EventStatus) *model.AttendanceEvent {
	t.Helper()
	e := &model.AttendanceEvent{
		UserID:    u.ID,
		UserName:  u.Name,
		Badge:     u.Badge,
		CompanyID: u.CompanyID,
		Date:      date,
		Kind:      kind,
		Time:      "08:00",
		Status:    status,
	}
	if err := s.Attendance().Create(e); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return e
}

func seedAttachment(t *testing.T, s *memory.Store, eventID uint) *model.Attachment {
	t.Helper()
	a := &model.Attachment{EventID: eventID, Kind: model.AttachmentJustification, Image: "x"}
	if _, err := s.Attachments().AttachToEvent(a); err != nil {
		t.Fatalf("attach: %v", err)
	}
	return a
}
