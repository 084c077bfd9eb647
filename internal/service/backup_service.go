package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"edms_training_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type BackupService struct {
	UserRepo     *repository.UserRepository
	TrainingRepo *repository.TrainingRepository
	AttemptRepo  *repository.AttemptRepository
	DB           *gorm.DB
}

func NewBackupService(
	userRepo *repository.UserRepository,
	trainingRepo *repository.TrainingRepository,
	attemptRepo *repository.AttemptRepository,
	db *gorm.DB,
) *BackupService {
	return &BackupService{
		UserRepo:     userRepo,
		TrainingRepo: trainingRepo,
		AttemptRepo:  attemptRepo,
		DB:           db,
	}
}

// Export 完整快照。用户连同密码一起导出，保证导入后能原样恢复。
func (s *BackupService) Export() (*model.AppBackup, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}

	trainingData, err := s.TrainingRepo.FindAllWithItems()
	if err != nil {
		return nil, err
	}

	attempts, err := s.AttemptRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &model.AppBackup{
		Users:        users,
		TrainingData: trainingData,
		Attempts:     attempts,
	}, nil
}

// Import 清空全部四张表后按备份里的 id 原样重建，自增计数一并复位。
// 单事务执行，任何一条记录出错都会整体回滚。
func (s *BackupService) Import(backup *model.AppBackup) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		wipe := []interface{}{
			&model.TrainingItem{},
			&model.TrainingImage{},
			&model.TrainingAttempt{},
			&model.User{},
		}
		for _, m := range wipe {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		err := repository.ResetAutoIncrement(tx,
			"users", "training_images", "training_items", "training_attempts")
		if err != nil {
			return err
		}

		for _, user := range backup.Users {
			row := user
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, image := range backup.TrainingData {
			row := model.TrainingImage{ID: image.ID, ImageURL: image.ImageURL}
			if err := tx.Omit("Items").Create(&row).Error; err != nil {
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

		for _, attempt := range backup.Attempts {
			row := attempt
			if row.Results == nil {
				row.Results = model.UserResults{}
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	monitoring.ImportsApplied.Inc()
	return nil
}
