package model

import "gorm.io/gorm"

type Company struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
}
