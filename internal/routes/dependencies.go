package routes

import (
	"checkrrhh-backend/config"
	"checkrrhh-backend/internal/attendance"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/lock"
	"checkrrhh-backend/internal/repository"
	"checkrrhh-backend/internal/repository/memory"
	"time"

	"gorm.io/gorm"
)

// Dependencies is what every SetupXRoutes needs. Build it with
// NewGormDependencies or NewMemoryDependencies.
type Dependencies struct {
	Config      *config.Config
	Policy      attendance.Policy
	Users       repository.UserRepository
	Companies   repository.CompanyRepository
	Attendance  repository.AttendanceRepository
	Attachments repository.AttachmentRepository
	Locker      lock.Locker
	Publisher   events.Publisher
}

func NewGormDependencies(cfg *config.Config, db *gorm.DB, locker lock.Locker, publisher events.Publisher) (*Dependencies, error) {
	return newDependencies(cfg, locker, publisher,
		repository.NewUserRepository(db),
		repository.NewCompanyRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewAttachmentRepository(db),
	)
}

func NewMemoryDependencies(cfg *config.Config, store *memory.Store, locker lock.Locker, publisher events.Publisher) (*Dependencies, error) {
	return newDependencies(cfg, locker, publisher,
		store.Users(), store.Companies(), store.Attendance(), store.Attachments())
}

func newDependencies(cfg *config.Config, locker lock.Locker, publisher events.Publisher, users repository.UserRepository, companies repository.CompanyRepository, eventRepo repository.AttendanceRepository, attachments repository.AttachmentRepository) (*Dependencies, error) {
	mode, err := attendance.ParseInferenceMode(cfg.Scan.Inference)
	if err != nil {
		return nil, err
	}
	if locker == nil {
		locker = lock.NewMemoryLocker()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Dependencies{
		Config:      cfg,
		Policy:      attendance.Policy{Grace: time.Duration(cfg.Scan.GraceMinutes) * time.Minute, Mode: mode},
		Users:       users,
		Companies:   companies,
		Attendance:  eventRepo,
		Attachments: attachments,
		Locker:      lock.WithTimeout(locker, cfg.Scan.LockTimeout),
		Publisher:   publisher,
	}, nil
}
