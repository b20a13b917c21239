package model

import "gorm.io/gorm"

type Role string

const (
	RoleEmployee     Role = "employee"
	RoleCompanyAdmin Role = "company-admin"
	RoleSuperAdmin   Role = "super-admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleCompanyAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleCompanyAdmin || r == RoleSuperAdmin
}

type User struct {
	gorm.Model
	CompanyID  *uint   `json:"company_id" gorm:"index"` // nil only for super-admin
	Badge      string  `json:"badge"`
	Name       string  `json:"name" gorm:"not null"`
	Email      string  `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password   string  `json:"-"`
	Department string  `json:"department"`
	Role       Role    `json:"role" gorm:"size:32;not null;default:employee"`
	QRToken    *string `json:"qr_token" gorm:"column:qr_token;uniqueIndex;size:191"`

	// Schedule, zero-padded "HH:MM"
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	LunchOutTime string `json:"lunch_out_time"`
	LunchInTime  string `json:"lunch_in_time"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}
