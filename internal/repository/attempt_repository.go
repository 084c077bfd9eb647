package repository

import (
	"edms_training_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindAll() ([]model.TrainingAttempt, error) {
	attempts := make([]model.TrainingAttempt, 0)
	err := r.DB.Order("id").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) Create(attempt *model.TrainingAttempt) error {
	return r.DB.Create(attempt).Error
}
