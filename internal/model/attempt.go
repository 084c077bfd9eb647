package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

type UserResultItem struct {
	Prompt    string `json:"prompt"`
	UserInput string `json:"userInput"`
	IsCorrect bool   `json:"isCorrect"`
}

// UserResult 单张图片的作答结果，正误判定在客户端完成
type UserResult struct {
	ImageID   uint             `json:"imageId"`
	Items     []UserResultItem `json:"items"`
	TimeTaken int64            `json:"timeTaken"` // 秒
}

// UserResults 以 JSON 文本整体落库，读取时还原为结构
type UserResults []UserResult

func (r UserResults) Value() (driver.Value, error) {
	if r == nil {
		r = UserResults{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *UserResults) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = UserResults{}
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported results column type %T", value)
	}
}

// swagger:model TrainingAttempt
type TrainingAttempt struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	Username     string      `gorm:"size:100;not null" json:"username"`
	Timestamp    int64       `gorm:"not null" json:"timestamp"` // 毫秒时间戳
	Results      UserResults `gorm:"type:text;not null" json:"results"`
	TotalTime    int64       `gorm:"column:totalTime;not null" json:"totalTime"`
	TotalItems   int         `gorm:"column:totalItems;not null" json:"totalItems"`
	CorrectItems int         `gorm:"column:correctItems;not null" json:"correctItems"`
	Accuracy     float64     `gorm:"not null" json:"accuracy"`
}

func (TrainingAttempt) TableName() string {
	return "training_attempts"
}

// Accuracy 命中率百分比，四舍五入到一位小数；没有条目时为 0.0
func Accuracy(correctItems, totalItems int) float64 {
	if totalItems <= 0 {
		return 0
	}
	return math.Round(float64(correctItems)/float64(totalItems)*1000) / 10
}

// NewAttempt 汇总各图片结果，得到一次完整训练的记录（不含 id）
func NewAttempt(username string, timestamp int64, results []UserResult) TrainingAttempt {
	var totalItems, correctItems int
	var totalTime int64
	for _, r := range results {
		totalItems += len(r.Items)
		totalTime += r.TimeTaken
		for _, item := range r.Items {
			if item.IsCorrect {
				correctItems++
			}
		}
	}

	return TrainingAttempt{
		Username:     username,
		Timestamp:    timestamp,
		Results:      UserResults(results),
		TotalTime:    totalTime,
		TotalItems:   totalItems,
		CorrectItems: correctItems,
		Accuracy:     Accuracy(correctItems, totalItems),
	}
}
