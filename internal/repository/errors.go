package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is gorm's not-found so callers can use one errors.Is check
	// for both the gorm and the in-memory stores.
	ErrNotFound  = gorm.ErrRecordNotFound
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
