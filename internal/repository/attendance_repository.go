package repository

import (
	"checkrrhh-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DecideFunc builds the event to append from the day's events, oldest first.
type DecideFunc func(today []model.AttendanceEvent) (*model.AttendanceEvent, error)

type AttendanceRepository interface {
	Create(event *model.AttendanceEvent) error
	GetByID(id uint) (*model.AttendanceEvent, error)
	GetByUserAndDate(userID uint, date string) ([]model.AttendanceEvent, error)
	GetByUserID(userID uint, limit int) ([]model.AttendanceEvent, error)
	GetByDate(date string, companyID *uint) ([]model.AttendanceEvent, error)
	GetByCompanyID(companyID uint, limit int) ([]model.AttendanceEvent, error)
	GetAll(limit int) ([]model.AttendanceEvent, error)
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	// AppendForDay reads the user's events for date, calls decide and stores
	// its result as one atomic unit; concurrent calls for the same user are
	// serialized.
	AppendForDay(userID uint, date string, decide DecideFunc) (*model.AttendanceEvent, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(event *model.AttendanceEvent) error {
	return translate(r.db.Create(event).Error)
}

func (r *attendanceRepository) GetByID(id uint) (*model.AttendanceEvent, error) {
	var event model.AttendanceEvent
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *attendanceRepository) GetByUserAndDate(userID uint, date string) ([]model.AttendanceEvent, error) {
	return dayEvents(r.db, userID, date)
}

func (r *attendanceRepository) GetByUserID(userID uint, limit int) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	err := latest(r.db.Where("user_id = ?", userID), limit).Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByDate(date string, companyID *uint) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	cond := map[string]interface{}{"date": date}
	if companyID != nil {
		cond["company_id"] = *companyID
	}
	err := r.db.Where(cond).Order("created_at asc").Order("id asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByCompanyID(companyID uint, limit int) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	err := latest(r.db.Where("company_id = ?", companyID), limit).Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetAll(limit int) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	err := latest(r.db, limit).Find(&list).Error
	return list, err
}

func (r *attendanceRepository) Delete(id uint) error {
	return deleted(r.db.Unscoped().Delete(&model.AttendanceEvent{}, id))
}

func (r *attendanceRepository) DeleteByUserID(userID uint) error {
	return r.db.Unscoped().Where("user_id = ?", userID).Delete(&model.AttendanceEvent{}).Error
}

func (r *attendanceRepository) AppendForDay(userID uint, date string, decide DecideFunc) (*model.AttendanceEvent, error) {
	var created *model.AttendanceEvent
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Row lock on the user serializes scans of the same badge across
		// connections; the (user_id, date, kind) index backs it up.
		var user model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&user, userID).Error; err != nil {
			return err
		}

		today, err := dayEvents(tx, userID, date)
		if err != nil {
			return err
		}

		event, err := decide(today)
		if err != nil {
			return err
		}

		if err := tx.Create(event).Error; err != nil {
			return translate(err)
		}
		created = event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func dayEvents(db *gorm.DB, userID uint, date string) ([]model.AttendanceEvent, error) {
	var list []model.AttendanceEvent
	// Map condition so gorm quotes the "date" column
	err := db.Where(map[string]interface{}{"user_id": userID, "date": date}).
		Order("created_at asc").Order("id asc").
		Find(&list).Error
	return list, err
}

func latest(db *gorm.DB, limit int) *gorm.DB {
	db = db.Order("created_at desc").Order("id desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	return db
}
