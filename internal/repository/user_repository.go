package repository

import (
	"checkrrhh-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	Update(user *model.User) error
	Delete(id uint) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByQRToken(token string) (*model.User, error)
	GetAll(search string) ([]model.User, error)
	GetByCompanyID(companyID uint, search string) ([]model.User, error)
	CountByCompanyID(companyID uint, role model.Role) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *userRepository) Update(user *model.User) error {
	return translate(r.db.Save(user).Error)
}

func (r *userRepository) Delete(id uint) error {
	return deleted(r.db.Unscoped().Delete(&model.User{}, id))
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Company").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Company").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByQRToken(token string) (*model.User, error) {
	var user model.User
	// Find + Limit(1) so gorm does not log "record not found" on every bad scan
	err := r.db.Where("qr_token = ?", token).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *userRepository) GetAll(search string) ([]model.User, error) {
	var users []model.User
	query := r.db.Preload("Company")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR badge LIKE ?", searchPattern, searchPattern)
	}

	err := query.Order("name asc").Find(&users).Error
	return users, err
}

func (r *userRepository) GetByCompanyID(companyID uint, search string) ([]model.User, error) {
	var users []model.User
	query := r.db.Where("company_id = ?", companyID)

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR badge LIKE ?", searchPattern, searchPattern)
	}

	err := query.Order("name asc").Find(&users).Error
	return users, err
}

func (r *userRepository) CountByCompanyID(companyID uint, role model.Role) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("company_id = ? AND role = ?", companyID, role).Count(&count).Error
	return count, err
}
