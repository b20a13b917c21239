package repository

import (
	"checkrrhh-backend/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	GetAll() ([]model.Company, error)
	GetByID(id uint) (*model.Company, error)
	Update(company *model.Company) error
	Delete(id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db}
}

func (r *companyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) GetAll() ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Order("name asc").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) GetByID(id uint) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(company *model.Company) error {
	return r.db.Save(company).Error
}

// Delete removes the row permanently; no soft delete for companies.
func (r *companyRepository) Delete(id uint) error {
	return deleted(r.db.Unscoped().Delete(&model.Company{}, id))
}
