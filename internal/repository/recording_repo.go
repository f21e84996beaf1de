package repository

import (
	"errors"

	"stream-preview/internal/domain/model"

	"gorm.io/gorm"
)

type RecordingRepository struct {
	db *gorm.DB
}

func NewRecordingRepository(db *gorm.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

func (r *RecordingRepository) AddRecording(recording *model.Recording) error {
	if recording == nil {
		return errors.New("recording 为空")
	}
	return r.db.Create(recording).Error
}

func (r *RecordingRepository) RemoveRecording(id int64) error {
	result := r.db.Delete(&model.Recording{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRecordingExceptZero 只更新非零字段
func (r *RecordingRepository) UpdateRecordingExceptZero(recording *model.Recording) error {
	if recording == nil || recording.ID == 0 {
		return errors.New("recording ID 不能为空")
	}

	var existing model.Recording
	if err := r.db.First(&existing, "id = ?", recording.ID).Error; err != nil {
		return err
	}
	return r.db.Model(&existing).Updates(recording).Error
}

func (r *RecordingRepository) ListRecordings() ([]model.Recording, error) {
	var recordings []model.Recording
	err := r.db.Order("create_time desc").Find(&recordings).Error
	return recordings, err
}

// GetRecordingById 没查到时返回 nil, nil
func (r *RecordingRepository) GetRecordingById(id int64) (*model.Recording, error) {
	var recording model.Recording
	err := r.db.First(&recording, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recording, nil
}
