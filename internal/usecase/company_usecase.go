package usecase

import (
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"context"
	"errors"
	"strings"
)

// Confirmation is the second, explicit acknowledgement a destructive
// company delete needs. CompanyName must repeat the exact stored name.
type Confirmation struct {
	Confirmed   bool   `json:"confirmed"`
	CompanyName string `json:"company_name"`
}

// DeletionReport counts what a company delete removed.
type DeletionReport struct {
	CompanyID          uint `json:"company_id"`
	UsersDeleted       int  `json:"users_deleted"`
	EventsDeleted      int  `json:"events_deleted"`
	AttachmentsDeleted int  `json:"attachments_deleted"`
}

type CompanyInput struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
}

type CompanyUsecase struct {
	companies   repository.CompanyRepository
	users       repository.UserRepository
	eventRepo   repository.AttendanceRepository
	attachments repository.AttachmentRepository
	publisher   events.Publisher
}

func NewCompanyUsecase(companies repository.CompanyRepository, users repository.UserRepository, eventRepo repository.AttendanceRepository, attachments repository.AttachmentRepository, publisher events.Publisher) *CompanyUsecase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &CompanyUsecase{
		companies:   companies,
		users:       users,
		eventRepo:   eventRepo,
		attachments: attachments,
		publisher:   publisher,
	}
}

func (u *CompanyUsecase) Create(actor Actor, in CompanyInput) (*model.Company, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("company name is required")
	}
	company := &model.Company{Name: name, TaxID: strings.TrimSpace(in.TaxID), Address: strings.TrimSpace(in.Address)}
	if err := u.companies.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// List returns every company to the super-admin and only the own company
// to a company-admin.
func (u *CompanyUsecase) List(actor Actor) ([]model.Company, error) {
	if actor.IsSuperAdmin() {
		return u.companies.GetAll()
	}
	if actor.Role != model.RoleCompanyAdmin || actor.CompanyID == nil {
		return nil, ErrForbidden
	}
	company, err := u.companies.GetByID(*actor.CompanyID)
	if err != nil {
		return nil, err
	}
	return []model.Company{*company}, nil
}

func (u *CompanyUsecase) Get(actor Actor, id uint) (*model.Company, error) {
	if !actor.CanAccessCompany(id) {
		return nil, ErrForbidden
	}
	return u.companies.GetByID(id)
}

func (u *CompanyUsecase) Update(actor Actor, id uint, in CompanyInput) (*model.Company, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrForbidden
	}
	company, err := u.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		company.Name = name
	}
	company.TaxID = strings.TrimSpace(in.TaxID)
	company.Address = strings.TrimSpace(in.Address)
	if err := u.companies.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company and everything that belongs to it, in
// order: its users, its events, the attachments of those users, and
// finally the company. Records already gone count as deleted, so calling
// it again after a *DeletionPartialFailure finishes the cascade.
func (u *CompanyUsecase) DeleteCompany(ctx context.Context, actor Actor, id uint, confirm Confirmation) (*DeletionReport, error) {
	if !actor.IsSuperAdmin() {
		return nil, ErrForbidden
	}

	// The company row goes last, so after a partial failure it is still
	// there to confirm against.
	company, err := u.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !confirm.Confirmed || confirm.CompanyName != company.Name {
		return nil, ErrConfirmationRequired
	}

	report := &DeletionReport{CompanyID: id}
	fail := func(step string, err error) (*DeletionReport, error) {
		logger.ErrorContext(ctx, "company delete interrupted", "company_id", id, "step", step, "error", err)
		return report, &DeletionPartialFailure{CompanyID: id, Step: step, Err: err}
	}

	users, err := u.users.GetByCompanyID(id, "")
	if err != nil {
		return fail(StepUsers, err)
	}
	userIDs := make([]uint, 0, len(users))
	for _, user := range users {
		if err := ignoreNotFound(u.users.Delete(user.ID)); err != nil {
			return fail(StepUsers, err)
		}
		userIDs = append(userIDs, user.ID)
		report.UsersDeleted++
	}

	companyEvents, err := u.eventRepo.GetByCompanyID(id, 0)
	if err != nil {
		return fail(StepEvents, err)
	}
	for _, event := range companyEvents {
		if err := ignoreNotFound(u.eventRepo.Delete(event.ID)); err != nil {
			return fail(StepEvents, err)
		}
		report.EventsDeleted++
	}
	// Events recorded before a user joined the company carry another tag.
	for _, userID := range userIDs {
		if err := ignoreNotFound(u.eventRepo.DeleteByUserID(userID)); err != nil {
			return fail(StepEvents, err)
		}
	}

	for _, userID := range userIDs {
		list, err := u.attachments.GetByUserID(userID)
		if err != nil {
			return fail(StepAttachments, err)
		}
		if err := ignoreNotFound(u.attachments.DeleteByUserID(userID)); err != nil {
			return fail(StepAttachments, err)
		}
		report.AttachmentsDeleted += len(list)
	}
	// Users removed by an earlier, interrupted run are no longer listed;
	// their attachments are still tagged with the company.
	leftovers, err := u.attachments.GetByCompanyID(id)
	if err != nil {
		return fail(StepAttachments, err)
	}
	for _, a := range leftovers {
		if err := ignoreNotFound(u.attachments.Delete(a.ID)); err != nil {
			return fail(StepAttachments, err)
		}
		report.AttachmentsDeleted++
	}

	if err := ignoreNotFound(u.companies.Delete(id)); err != nil {
		return fail(StepCompany, err)
	}

	logger.InfoContext(ctx, "company deleted",
		"company_id", id, "users", report.UsersDeleted, "events", report.EventsDeleted, "attachments", report.AttachmentsDeleted)

	if err := u.publisher.Publish(ctx, events.CompanyDeleted, events.CompanyDeletedEvent{
		CompanyID:          id,
		UsersDeleted:       report.UsersDeleted,
		EventsDeleted:      report.EventsDeleted,
		AttachmentsDeleted: report.AttachmentsDeleted,
	}); err != nil {
		logger.WarnContext(ctx, "publish company deleted failed", "error", err)
	}
	return report, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
