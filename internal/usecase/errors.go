package usecase

import (
	"checkrrhh-backend/internal/attendance"
	"checkrrhh-backend/internal/repository"
	"errors"
	"fmt"
)

var (
	ErrUnknownQRToken       = errors.New("unknown qr token")
	ErrAlreadyClockedOut    = attendance.ErrAlreadyClockedOut
	ErrConcurrentScan       = errors.New("concurrent scan conflict")
	ErrConfirmationRequired = errors.New("double confirmation required")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = repository.ErrNotFound
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmailTaken           = errors.New("email already registered")
	ErrDayHasEvents         = errors.New("day already has attendance events")
	ErrInvalidImage         = errors.New("invalid image payload")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Cascade steps, in execution order.
const (
	StepUsers       = "users"
	StepEvents      = "events"
	StepAttachments = "attachments"
	StepCompany     = "company"
)

// DeletionPartialFailure reports a cascade interrupted at Step. Everything
// before Step is gone; re-running the delete finishes the job.
type DeletionPartialFailure struct {
	CompanyID uint
	Step      string
	Err       error
}

func (e *DeletionPartialFailure) Error() string {
	return fmt.Sprintf("delete company %d: interrupted at %s: %v", e.CompanyID, e.Step, e.Err)
}

func (e *DeletionPartialFailure) Unwrap() error {
	return e.Err
}
