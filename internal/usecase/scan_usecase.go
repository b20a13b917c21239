package usecase

import (
	"checkrrhh-backend/internal/attendance"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/lock"
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/report"
	"checkrrhh-backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type ScanUsecase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	eventRepo repository.AttendanceRepository
	locker    lock.Locker
	publisher events.Publisher
	policy    attendance.Policy
}

func NewScanUsecase(users repository.UserRepository, companies repository.CompanyRepository, eventRepo repository.AttendanceRepository, locker lock.Locker, publisher events.Publisher, policy attendance.Policy) *ScanUsecase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &ScanUsecase{
		users:     users,
		companies: companies,
		eventRepo: eventRepo,
		locker:    locker,
		publisher: publisher,
		policy:    policy,
	}
}

// RecordScan records the next mark for the badge holding qrToken at the
// local time now. Exactly one event is stored on success, none on error.
func (u *ScanUsecase) RecordScan(ctx context.Context, qrToken string, now time.Time) (*model.AttendanceEvent, error) {
	qrToken = strings.TrimSpace(qrToken)
	if qrToken == "" {
		return nil, ErrUnknownQRToken
	}

	user, err := u.users.FindByQRToken(qrToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownQRToken
		}
		return nil, fmt.Errorf("lookup qr token: %w", err)
	}

	companyName := u.companyName(user.CompanyID)
	date := attendance.Day(now)
	clock := attendance.Clock(now)

	unlock, err := u.locker.Lock(ctx, fmt.Sprintf("scan:%d:%s", user.ID, date))
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrConcurrentScan
		}
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	defer unlock()

	schedule := attendance.ScheduleOf(user)
	event, err := u.eventRepo.AppendForDay(user.ID, date, func(today []model.AttendanceEvent) (*model.AttendanceEvent, error) {
		decision, err := attendance.Resolve(today, clock, schedule, u.policy)
		if err != nil {
			return nil, err
		}
		return &model.AttendanceEvent{
			UserID:      user.ID,
			UserName:    user.Name,
			Badge:       user.Badge,
			CompanyID:   user.CompanyID,
			CompanyName: companyName,
			Date:        date,
			Kind:        decision.Kind,
			Time:        clock,
			Status:      decision.Status,
		}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyClockedOut):
			return nil, ErrAlreadyClockedOut
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrConcurrentScan
		}
		return nil, fmt.Errorf("append attendance event: %w", err)
	}

	logger.InfoContext(ctx, "attendance recorded",
		"user_id", user.ID, "kind", event.Kind, "status", event.Status, "date", date, "time", clock)

	if err := u.publisher.Publish(ctx, events.AttendanceRecorded, events.AttendanceRecordedEvent{
		EventID:   event.ID,
		UserID:    event.UserID,
		CompanyID: event.CompanyID,
		Date:      event.Date,
		Kind:      string(event.Kind),
		Time:      event.Time,
		Status:    string(event.Status),
	}); err != nil {
		logger.WarnContext(ctx, "publish attendance event failed", "error", err)
	}

	return event, nil
}

func (u *ScanUsecase) companyName(companyID *uint) string {
	if companyID == nil {
		return report.NoCompany
	}
	company, err := u.companies.GetByID(*companyID)
	if err != nil || company.Name == "" {
		return report.NoCompany
	}
	return company.Name
}
