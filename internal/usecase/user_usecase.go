package usecase

import (
	"checkrrhh-backend/internal/badge"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const badgeScale = 8

// EmployeeInput is the writable part of a user record. Empty strings leave
// the stored value untouched on update.
type EmployeeInput struct {
	CompanyID    *uint      `json:"company_id"`
	Badge        string     `json:"badge"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	Department   string     `json:"department"`
	Role         model.Role `json:"role"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	LunchOutTime string     `json:"lunch_out_time"`
	LunchInTime  string     `json:"lunch_in_time"`
}

type UserUsecase struct {
	users       repository.UserRepository
	companies   repository.CompanyRepository
	eventRepo   repository.AttendanceRepository
	attachments repository.AttachmentRepository
	publisher   events.Publisher
}

func NewUserUsecase(users repository.UserRepository, companies repository.CompanyRepository, eventRepo repository.AttendanceRepository, attachments repository.AttachmentRepository, publisher events.Publisher) *UserUsecase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &UserUsecase{
		users:       users,
		companies:   companies,
		eventRepo:   eventRepo,
		attachments: attachments,
		publisher:   publisher,
	}
}

func (u *UserUsecase) CreateEmployee(actor Actor, in EmployeeInput) (*model.User, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrForbidden
	}
	if in.Role == "" {
		in.Role = model.RoleEmployee
	}
	companyID, err := u.placement(actor, in.Role, in.CompanyID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case name == "":
		return nil, invalid("name is required")
	case email == "" || !strings.Contains(email, "@"):
		return nil, invalid("a valid email is required")
	case in.Password == "":
		return nil, invalid("password is required")
	}
	if err := validClocks(in); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		CompanyID:    companyID,
		Badge:        strings.TrimSpace(in.Badge),
		Name:         name,
		Email:        email,
		Password:     hashed,
		Department:   strings.TrimSpace(in.Department),
		Role:         in.Role,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		LunchOutTime: in.LunchOutTime,
		LunchInTime:  in.LunchInTime,
	}
	if user.Role == model.RoleEmployee {
		token := badge.NewToken(user.Badge)
		user.QRToken = &token
	}

	if err := u.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) UpdateEmployee(actor Actor, id uint, in EmployeeInput) (*model.User, error) {
	user, err := u.GetEmployee(actor, id)
	if err != nil {
		return nil, err
	}
	if err := validClocks(in); err != nil {
		return nil, err
	}

	if in.Role != "" && in.Role != user.Role {
		companyID, err := u.placement(actor, in.Role, firstNonNil(in.CompanyID, user.CompanyID))
		if err != nil {
			return nil, err
		}
		user.Role = in.Role
		user.CompanyID = companyID
	} else if in.CompanyID != nil {
		companyID, err := u.placement(actor, user.Role, in.CompanyID)
		if err != nil {
			return nil, err
		}
		user.CompanyID = companyID
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		user.Name = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		if !strings.Contains(v, "@") {
			return nil, invalid("a valid email is required")
		}
		user.Email = v
	}
	if v := strings.TrimSpace(in.Badge); v != "" {
		user.Badge = v
	}
	if v := strings.TrimSpace(in.Department); v != "" {
		user.Department = v
	}
	setIfNotEmpty(&user.StartTime, in.StartTime)
	setIfNotEmpty(&user.EndTime, in.EndTime)
	setIfNotEmpty(&user.LunchOutTime, in.LunchOutTime)
	setIfNotEmpty(&user.LunchInTime, in.LunchInTime)

	if in.Password != "" {
		hashed, err := HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}
	if user.Role == model.RoleEmployee && user.QRToken == nil {
		token := badge.NewToken(user.Badge)
		user.QRToken = &token
	}

	user.Company = nil
	if err := u.users.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) GetEmployee(actor Actor, id uint) (*model.User, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrForbidden
	}
	user, err := u.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.canAccessUser(user) {
		// Same answer as a missing record so ids of other companies do not leak
		return nil, ErrNotFound
	}
	return user, nil
}

// ListEmployees lists the users of one company, or of all companies for the
// super-admin when companyID is nil. search matches name or badge.
func (u *UserUsecase) ListEmployees(actor Actor, companyID *uint, search string) ([]model.User, error) {
	scope, err := actor.scope(companyID)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	if scope == nil {
		return u.users.GetAll(search)
	}
	return u.users.GetByCompanyID(*scope, search)
}

// DeleteEmployee removes a user together with their events and
// attachments.
func (u *UserUsecase) DeleteEmployee(ctx context.Context, actor Actor, id uint) error {
	if actor.UserID == id {
		return invalid("you cannot delete your own account")
	}
	user, err := u.GetEmployee(actor, id)
	if err != nil {
		return err
	}

	if err := ignoreNotFound(u.eventRepo.DeleteByUserID(id)); err != nil {
		return fmt.Errorf("delete events of user %d: %w", id, err)
	}
	if err := ignoreNotFound(u.attachments.DeleteByUserID(id)); err != nil {
		return fmt.Errorf("delete attachments of user %d: %w", id, err)
	}
	if err := ignoreNotFound(u.users.Delete(id)); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	logger.InfoContext(ctx, "employee deleted", "user_id", id, "by", actor.UserID)
	if err := u.publisher.Publish(ctx, events.EmployeeDeleted, events.EmployeeDeletedEvent{
		UserID:    id,
		CompanyID: user.CompanyID,
	}); err != nil {
		logger.WarnContext(ctx, "publish employee deleted failed", "error", err)
	}
	return nil
}

// RegenerateQR issues a fresh badge token; the old one stops working.
func (u *UserUsecase) RegenerateQR(actor Actor, id uint) (*model.User, error) {
	user, err := u.GetEmployee(actor, id)
	if err != nil {
		return nil, err
	}
	token := badge.NewToken(user.Badge)
	user.QRToken = &token
	user.Company = nil
	if err := u.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) BadgePNG(actor Actor, id uint) ([]byte, error) {
	user, err := u.GetEmployee(actor, id)
	if err != nil {
		return nil, err
	}
	return qrImage(user)
}

func (u *UserUsecase) Me(actor Actor) (*model.User, error) {
	return u.users.FindByID(actor.UserID)
}

func (u *UserUsecase) MyEvents(actor Actor, limit int) ([]model.AttendanceEvent, error) {
	return u.eventRepo.GetByUserID(actor.UserID, limit)
}

func (u *UserUsecase) MyQR(actor Actor) ([]byte, error) {
	user, err := u.users.FindByID(actor.UserID)
	if err != nil {
		return nil, err
	}
	return qrImage(user)
}

func qrImage(user *model.User) ([]byte, error) {
	if user.QRToken == nil || *user.QRToken == "" {
		return nil, invalid("user %d has no badge", user.ID)
	}
	return badge.PNG(*user.QRToken, badgeScale)
}

// placement decides the company a user with role belongs to, given who is
// asking. A super-admin belongs to none.
func (u *UserUsecase) placement(actor Actor, role model.Role, requested *uint) (*uint, error) {
	if !role.Valid() {
		return nil, invalid("unknown role %q", role)
	}
	if role == model.RoleSuperAdmin {
		if !actor.IsSuperAdmin() {
			return nil, ErrForbidden
		}
		return nil, nil
	}

	companyID := requested
	if !actor.IsSuperAdmin() {
		companyID = actor.CompanyID
		if requested != nil && (companyID == nil || *requested != *companyID) {
			return nil, ErrForbidden
		}
	}
	if companyID == nil {
		return nil, invalid("company_id is required for role %s", role)
	}
	if _, err := u.companies.GetByID(*companyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("company %d does not exist", *companyID)
		}
		return nil, err
	}
	id := *companyID
	return &id, nil
}

func validClocks(in EmployeeInput) error {
	for field, v := range map[string]string{
		"start_time":     in.StartTime,
		"end_time":       in.EndTime,
		"lunch_out_time": in.LunchOutTime,
		"lunch_in_time":  in.LunchInTime,
	} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("15:04", v); err != nil || len(v) != 5 {
			return invalid("%s must be HH:MM, got %q", field, v)
		}
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func firstNonNil(a, b *uint) *uint {
	if a != nil {
		return a
	}
	return b
}
