package model

import "gorm.io/gorm"

type AttachmentKind string

const (
	AttachmentJustification      AttachmentKind = "justification"
	AttachmentMedicalCertificate AttachmentKind = "medical-certificate"
	AttachmentSpecialPermit      AttachmentKind = "special-permit"
	AttachmentOther              AttachmentKind = "other"
)

func (k AttachmentKind) Valid() bool {
	switch k {
	case AttachmentJustification, AttachmentMedicalCertificate, AttachmentSpecialPermit, AttachmentOther:
		return true
	}
	return false
}

type Attachment struct {
	gorm.Model
	EventID   uint           `json:"event_id" gorm:"index;not null"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	CompanyID *uint          `json:"company_id" gorm:"index"` // Copied from the event
	Kind      AttachmentKind `json:"kind" gorm:"size:32;not null"`
	Comment   string         `json:"comment"`
	Image     string         `json:"image"` // Base64, may carry a data: URL prefix
}
