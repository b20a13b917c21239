package repository

import (
	"checkrrhh-backend/internal/model"

	"gorm.io/gorm"
)

type AttachmentRepository interface {
	GetByID(id uint) (*model.Attachment, error)
	GetByEventID(eventID uint) ([]model.Attachment, error)
	GetByUserID(userID uint) ([]model.Attachment, error)
	GetByCompanyID(companyID uint) ([]model.Attachment, error)
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	// AttachToEvent stores the attachment and links it to its event in one
	// transaction. A late event becomes justified.
	AttachToEvent(attachment *model.Attachment) (*model.AttendanceEvent, error)
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db}
}

func (r *attachmentRepository) GetByID(id uint) (*model.Attachment, error) {
	var attachment model.Attachment
	err := r.db.First(&attachment, id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepository) GetByEventID(eventID uint) ([]model.Attachment, error) {
	var list []model.Attachment
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *attachmentRepository) GetByUserID(userID uint) ([]model.Attachment, error) {
	var list []model.Attachment
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *attachmentRepository) GetByCompanyID(companyID uint) ([]model.Attachment, error) {
	var list []model.Attachment
	err := r.db.Where("company_id = ?", companyID).Find(&list).Error
	return list, err
}

func (r *attachmentRepository) Delete(id uint) error {
	return deleted(r.db.Unscoped().Delete(&model.Attachment{}, id))
}

func (r *attachmentRepository) DeleteByUserID(userID uint) error {
	return r.db.Unscoped().Where("user_id = ?", userID).Delete(&model.Attachment{}).Error
}

func (r *attachmentRepository) AttachToEvent(attachment *model.Attachment) (*model.AttendanceEvent, error) {
	var event model.AttendanceEvent
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, attachment.EventID).Error; err != nil {
			return err
		}
		attachment.UserID = event.UserID
		attachment.CompanyID = event.CompanyID

		if err := tx.Create(attachment).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"attachment_id": attachment.ID}
		if event.Status == model.StatusLate {
			updates["status"] = model.StatusJustified
		}
		if err := tx.Model(&event).Updates(updates).Error; err != nil {
			return err
		}
		event.AttachmentID = &attachment.ID
		if event.Status == model.StatusLate {
			event.Status = model.StatusJustified
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
