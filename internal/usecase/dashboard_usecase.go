package usecase

import (
	"checkrrhh-backend/internal/attendance"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/report"
	"checkrrhh-backend/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	Employees int64 `json:"employees"`
	report.Summary
}

type DashboardUsecase struct {
	users     repository.UserRepository
	eventRepo repository.AttendanceRepository
}

func NewDashboardUsecase(users repository.UserRepository, eventRepo repository.AttendanceRepository) *DashboardUsecase {
	return &DashboardUsecase{users: users, eventRepo: eventRepo}
}

// Today loads the head count and the day's events side by side.
func (u *DashboardUsecase) Today(ctx context.Context, actor Actor, companyID *uint, now time.Time) (*Dashboard, error) {
	scope, err := actor.scope(companyID)
	if err != nil {
		return nil, err
	}
	date := attendance.Day(now)

	var (
		employees int64
		today     []model.AttendanceEvent
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if scope != nil {
			n, err := u.users.CountByCompanyID(*scope, model.RoleEmployee)
			employees = n
			return err
		}
		all, err := u.users.GetAll("")
		for _, user := range all {
			if user.Role == model.RoleEmployee {
				employees++
			}
		}
		return err
	})
	g.Go(func() error {
		list, err := u.eventRepo.GetByDate(date, scope)
		today = list
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{Employees: employees, Summary: report.Summarize(today, date)}, nil
}
