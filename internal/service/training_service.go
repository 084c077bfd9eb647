package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingService struct {
	TrainingRepo *repository.TrainingRepository
	DB           *gorm.DB
}

func NewTrainingService(trainingRepo *repository.TrainingRepository, db *gorm.DB) *TrainingService {
	return &TrainingService{TrainingRepo: trainingRepo, DB: db}
}

func (s *TrainingService) List() ([]model.TrainingImage, error) {
	return s.TrainingRepo.FindAllWithItems()
}

// Replace 整体覆盖训练图集。语义上是全量替换——载荷里缺席的图片连同条目
// 永久删除，图片 id 以载荷为准。实现为差量对齐的单事务，避免先清空再重建
// 造成的瞬时外键空窗。历史训练记录按值引用题目，替换后仍可读。
func (s *TrainingService) Replace(images []model.TrainingImage) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existingIDs []uint
		if err := tx.Model(&model.TrainingImage{}).Pluck("id", &existingIDs).Error; err != nil {
			return err
		}

		payloadIDs := make(map[uint]bool, len(images))
		for _, image := range images {
			payloadIDs[image.ID] = true
		}

		for _, id := range existingIDs {
			if payloadIDs[id] {
				continue
			}
			if err := tx.Where("image_id = ?", id).Delete(&model.TrainingItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.TrainingImage{}, id).Error; err != nil {
				return err
			}
		}

		for _, image := range images {
			row := model.TrainingImage{ID: image.ID, ImageURL: image.ImageURL}
			if err := tx.Omit("Items").Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}

			// 条目整体重建，顺序以载荷为准
			if err := tx.Where("image_id = ?", row.ID).Delete(&model.TrainingItem{}).Error; err != nil {
				return err
			}
			for _, item := range image.Items {
				created := model.TrainingItem{
					ImageID:       row.ID,
					Prompt:        item.Prompt,
					CorrectAnswer: item.CorrectAnswer,
				}
				if err := tx.Create(&created).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
