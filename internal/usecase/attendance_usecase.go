package usecase

import (
	"bytes"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/report"
	"checkrrhh-backend/internal/repository"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

const (
	DefaultEventLimit = 100
	MaxImageBytes     = 5 << 20
	absenceClock      = "00:00"
)

type AttachmentInput struct {
	Kind    model.AttachmentKind `json:"kind"`
	Comment string               `json:"comment"`
	Image   string               `json:"image"`
}

type AttendanceUsecase struct {
	users       repository.UserRepository
	companies   repository.CompanyRepository
	eventRepo   repository.AttendanceRepository
	attachments repository.AttachmentRepository
	publisher   events.Publisher
}

func NewAttendanceUsecase(users repository.UserRepository, companies repository.CompanyRepository, eventRepo repository.AttendanceRepository, attachments repository.AttachmentRepository, publisher events.Publisher) *AttendanceUsecase {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &AttendanceUsecase{
		users:       users,
		companies:   companies,
		eventRepo:   eventRepo,
		attachments: attachments,
		publisher:   publisher,
	}
}

// ListEvents returns the most recent events the actor may see, newest first.
func (u *AttendanceUsecase) ListEvents(actor Actor, companyID *uint, limit int) ([]model.AttendanceEvent, error) {
	scope, err := actor.scope(companyID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultEventLimit {
		limit = DefaultEventLimit
	}
	if scope == nil {
		return u.eventRepo.GetAll(limit)
	}
	return u.eventRepo.GetByCompanyID(*scope, limit)
}

// Report returns every event in scope that passes f.
func (u *AttendanceUsecase) Report(actor Actor, companyID *uint, f report.Filter) ([]model.AttendanceEvent, error) {
	scope, err := actor.scope(companyID)
	if err != nil {
		return nil, err
	}
	var list []model.AttendanceEvent
	if scope == nil {
		list, err = u.eventRepo.GetAll(0)
	} else {
		list, err = u.eventRepo.GetByCompanyID(*scope, 0)
	}
	if err != nil {
		return nil, err
	}
	return report.FilterEvents(list, f), nil
}

// MarkAbsence records an absence for a day the user has no marks on.
func (u *AttendanceUsecase) MarkAbsence(ctx context.Context, actor Actor, userID uint, date string) (*model.AttendanceEvent, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, invalid("date must be YYYY-MM-DD, got %q", date)
	}
	user, err := u.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsAdmin() || !actor.canAccessUser(user) {
		return nil, ErrForbidden
	}

	companyName := report.NoCompany
	if user.Company != nil && user.Company.Name != "" {
		companyName = user.Company.Name
	}

	event, err := u.eventRepo.AppendForDay(user.ID, date, func(today []model.AttendanceEvent) (*model.AttendanceEvent, error) {
		if len(today) > 0 {
			return nil, ErrDayHasEvents
		}
		return &model.AttendanceEvent{
			UserID:      user.ID,
			UserName:    user.Name,
			Badge:       user.Badge,
			CompanyID:   user.CompanyID,
			CompanyName: companyName,
			Date:        date,
			Kind:        model.KindAbsence,
			Time:        absenceClock,
			Status:      model.StatusNormal,
		}, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDayHasEvents
		}
		return nil, err
	}

	logger.InfoContext(ctx, "absence marked", "user_id", user.ID, "date", date, "by", actor.UserID)
	if err := u.publisher.Publish(ctx, events.AttendanceRecorded, events.AttendanceRecordedEvent{
		EventID:   event.ID,
		UserID:    event.UserID,
		CompanyID: event.CompanyID,
		Date:      event.Date,
		Kind:      string(event.Kind),
		Time:      event.Time,
		Status:    string(event.Status),
	}); err != nil {
		logger.WarnContext(ctx, "publish absence failed", "error", err)
	}
	return event, nil
}

// Attach stores a justification photo for an event. A late event becomes
// justified.
func (u *AttendanceUsecase) Attach(ctx context.Context, actor Actor, eventID uint, in AttachmentInput) (*model.Attachment, *model.AttendanceEvent, error) {
	event, err := u.event(actor, eventID)
	if err != nil {
		return nil, nil, err
	}
	if in.Kind == "" {
		in.Kind = model.AttachmentJustification
	}
	if !in.Kind.Valid() {
		return nil, nil, invalid("unknown attachment kind %q", in.Kind)
	}
	if err := ValidateImage(in.Image); err != nil {
		return nil, nil, err
	}

	attachment := &model.Attachment{
		EventID: event.ID,
		Kind:    in.Kind,
		Comment: strings.TrimSpace(in.Comment),
		Image:   in.Image,
	}
	updated, err := u.attachments.AttachToEvent(attachment)
	if err != nil {
		return nil, nil, err
	}
	logger.InfoContext(ctx, "attachment stored", "event_id", event.ID, "attachment_id", attachment.ID, "status", updated.Status)
	return attachment, updated, nil
}

func (u *AttendanceUsecase) ListAttachmentsByEvent(actor Actor, eventID uint) ([]model.Attachment, error) {
	if _, err := u.event(actor, eventID); err != nil {
		return nil, err
	}
	return u.attachments.GetByEventID(eventID)
}

func (u *AttendanceUsecase) ListAttachmentsByUser(actor Actor, userID uint) ([]model.Attachment, error) {
	user, err := u.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if actor.UserID != userID && !(actor.Role.IsAdmin() && actor.canAccessUser(user)) {
		return nil, ErrForbidden
	}
	return u.attachments.GetByUserID(userID)
}

func (u *AttendanceUsecase) event(actor Actor, eventID uint) (*model.AttendanceEvent, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrForbidden
	}
	event, err := u.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin() && (event.CompanyID == nil || !actor.CanAccessCompany(*event.CompanyID)) {
		return nil, ErrNotFound
	}
	return event, nil
}

// ValidateImage accepts a base64 PNG, JPEG or WebP, optionally as a data
// URL, of at most MaxImageBytes decoded.
func ValidateImage(payload string) error {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return fmt.Errorf("%w: empty", ErrInvalidImage)
	}
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.HasSuffix(payload[:comma], ";base64") {
			return fmt.Errorf("%w: malformed data url", ErrInvalidImage)
		}
		payload = payload[comma+1:]
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return fmt.Errorf("%w: not base64", ErrInvalidImage)
		}
	}
	if len(raw) > MaxImageBytes {
		return fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	switch format {
	case "png", "jpeg", "webp":
		return nil
	}
	return fmt.Errorf("%w: unsupported format %s", ErrInvalidImage, format)
}
