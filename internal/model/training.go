package model

// swagger:model TrainingImage
type TrainingImage struct {
	ID       uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL string         `gorm:"column:imageUrl;size:2048;not null" json:"imageUrl"`
	Items    []TrainingItem `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE" json:"items"`
}

func (TrainingImage) TableName() string {
	return "training_images"
}

// TrainingItem 只属于一张图片，图片删除时随之删除
type TrainingItem struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ImageID       uint   `gorm:"column:image_id;not null;index" json:"-"`
	Prompt        string `gorm:"size:255;not null" json:"prompt"`
	CorrectAnswer string `gorm:"column:correctAnswer;size:255;not null" json:"correctAnswer"`
}

func (TrainingItem) TableName() string {
	return "training_items"
}
