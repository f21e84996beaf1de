package repository

import "gorm.io/gorm"

type Repository struct {
	Recording *RecordingRepository
	Config    *ConfigRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Recording: NewRecordingRepository(db),
		Config:    NewConfigRepository(db),
	}
}
