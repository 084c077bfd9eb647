package database

import (
	"edms_training_backend/internal/config"
	"edms_training_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表并写入内置数据，测试里直接挂在内存库上使用
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.TrainingImage{},
		&model.TrainingItem{},
		&model.TrainingAttempt{},
	)
	if err != nil {
		return err
	}

	return seed(db)
}

func seed(db *gorm.DB) error {
	// admin 账号必须始终存在
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", model.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		admin := model.User{Username: model.AdminUsername, Password: "admin", Role: model.RoleAdmin}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Default admin user created")
	}

	// 没有任何训练图片时写入默认图集
	var imageCount int64
	if err := db.Model(&model.TrainingImage{}).Count(&imageCount).Error; err != nil {
		return err
	}
	if imageCount == 0 {
		for _, image := range DefaultTrainingData() {
			if err := db.Create(&image).Error; err != nil {
				return err
			}
		}
		log.Println("Initial training data seeded")
	}

	return nil
}

// DefaultTrainingData 默认训练图集（振込明细の转记练习）
func DefaultTrainingData() []model.TrainingImage {
	return []model.TrainingImage{
		{
			ID:       1,
			ImageURL: "https://i.imgur.com/2G6202K.png",
			Items: []model.TrainingItem{
				{Prompt: "243,776", CorrectAnswer: "PE シヤカイホケンリヨウトウ*"},
				{Prompt: "121,887", CorrectAnswer: "PE シヤカイホケンリヨウトウ*"},
				{Prompt: "144,450", CorrectAnswer: "ジエーシービー"},
				{Prompt: "11,000", CorrectAnswer: "DF. トータルホウシユウ"},
				{Prompt: "308,000", CorrectAnswer: "振込 ターボソフト(カ"},
			},
		},
		{
			ID:       2,
			ImageURL: "https://i.imgur.com/Wbixp5F.png",
			Items: []model.TrainingItem{
				{Prompt: "8,800", CorrectAnswer: "ビユーカード"},
				{Prompt: "5,000", CorrectAnswer: "MHF"},
				{Prompt: "10,000", CorrectAnswer: "JCB"},
				{Prompt: "46,183", CorrectAnswer: "アマゾンジャパン"},
				{Prompt: "7,000", CorrectAnswer: "77ギンコウ"},
				{Prompt: "300,000", CorrectAnswer: "カ)グッドスピード"},
			},
		},
		{
			ID:       3,
			ImageURL: "https://i.imgur.com/d9j8g1x.png",
			Items: []model.TrainingItem{
				{Prompt: "660", CorrectAnswer: "リソナ"},
				{Prompt: "20,000", CorrectAnswer: "MHF"},
				{Prompt: "35,000", CorrectAnswer: "MHF"},
				{Prompt: "55,660", CorrectAnswer: "AP(ヤフージャパン"},
				{Prompt: "50,000", CorrectAnswer: "NISA"},
			},
		},
	}
}
