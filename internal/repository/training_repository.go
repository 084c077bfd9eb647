package repository

import (
	"edms_training_backend/internal/model"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

// FindAllWithItems 返回全部训练图片，条目按落库顺序嵌套其中
func (r *TrainingRepository) FindAllWithItems() ([]model.TrainingImage, error) {
	images := make([]model.TrainingImage, 0)
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("training_items.id")
		}).
		Order("training_images.id").
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	for i := range images {
		if images[i].Items == nil {
			images[i].Items = make([]model.TrainingItem, 0)
		}
	}
	return images, nil
}
