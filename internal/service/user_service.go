package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	DB       *gorm.DB
}

func NewUserService(userRepo *repository.UserRepository, db *gorm.DB) *UserService {
	return &UserService{UserRepo: userRepo, DB: db}
}

// List 全部用户，不含密码
func (s *UserService) List() ([]model.User, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// BulkReplace 以载荷为准对齐用户表：带 id 的条目更新，不带 id 的新建，
// 存量中缺席的删除（admin 账号除外）。整个对齐在一个事务里完成，
// 出错即整体回滚，外部永远看不到半套状态。
func (s *UserService) BulkReplace(payload []model.User) ([]model.User, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existingIDs []uint
		if err := tx.Model(&model.User{}).Pluck("id", &existingIDs).Error; err != nil {
			return err
		}

		payloadIDs := make(map[uint]bool, len(payload))
		for _, u := range payload {
			if u.ID != 0 {
				payloadIDs[u.ID] = true

				updates := map[string]interface{}{
					"username": u.Username,
					"role":     u.Role,
				}
				// 空密码表示保持不变，避免被空串覆盖
				if u.Password != "" {
					updates["password"] = u.Password
				}
				if err := tx.Model(&model.User{}).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
					return err
				}
			} else {
				created := model.User{
					Username: u.Username,
					Password: u.Password,
					Role:     u.Role,
				}
				if err := tx.Create(&created).Error; err != nil {
					return err
				}
			}
		}

		// 载荷里没有的存量条目删除；username 条件在删除时刻生效，admin 永远保留
		for _, id := range existingIDs {
			if payloadIDs[id] {
				continue
			}
			err := tx.Where("id = ? AND username <> ?", id, model.AdminUsername).
				Delete(&model.User{}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.List()
}
