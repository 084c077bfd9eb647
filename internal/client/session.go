package client

import (
	"context"
	"edms_training_backend/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// View 会话当前所处的界面状态
type View int

const (
	ViewLogin View = iota
	ViewDashboard
	ViewTraining
	ViewResults
	ViewExaminerSetup
	ViewAdminDashboard
)

// TrainingEntry 一张图片的录入结果，Inputs 按条目顺序对应 Items
type TrainingEntry struct {
	ImageID   uint
	Inputs    []string
	TimeTaken int64
}

// Session 驱动一次完整的训练会话，持有从服务端拉取的全量状态
type Session struct {
	Client *Client

	View         View
	CurrentUser  *model.User
	Users        []model.User
	TrainingData []model.TrainingImage
	AllAttempts  []model.TrainingAttempt
	LastAttempt  *model.TrainingAttempt
	LoadFailed   bool
}

func NewSession(c *Client) *Session {
	return &Session{Client: c, View: ViewLogin}
}

// Bootstrap 拉取全量数据，登录前后都可调用
func (s *Session) Bootstrap(ctx context.Context) error {
	data, err := s.Client.FetchData(ctx)
	if err != nil {
		s.LoadFailed = true
		return err
	}
	s.LoadFailed = false
	s.Users = data.Users
	s.TrainingData = data.TrainingData
	s.AllAttempts = data.AllAttempts
	return nil
}

// Login 校验凭证，成功后所有角色都先进训练主页；
// 管理界面和题库维护从主页入口进入
func (s *Session) Login(ctx context.Context, username, password string) error {
	user, err := s.Client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	s.CurrentUser = user
	s.View = ViewDashboard
	return nil
}

func (s *Session) Logout() {
	s.CurrentUser = nil
	s.LastAttempt = nil
	s.View = ViewLogin
}

func (s *Session) StartTraining() {
	s.View = ViewTraining
}

// OpenAdminDashboard 主页上的用户管理入口，仅管理员可用
func (s *Session) OpenAdminDashboard() {
	if s.CurrentUser != nil && s.CurrentUser.Role == model.RoleAdmin {
		s.View = ViewAdminDashboard
	}
}

// OpenExaminerSetup 主页上的题库维护入口，仅考官可用
func (s *Session) OpenExaminerSetup() {
	if s.CurrentUser != nil && s.CurrentUser.Role == model.RoleExaminer {
		s.View = ViewExaminerSetup
	}
}

// RestartTraining 从成绩页重来：清掉成绩回到主页，再次开始走 StartTraining
func (s *Session) RestartTraining() {
	s.LastAttempt = nil
	s.View = ViewDashboard
}

func (s *Session) BackToDashboard() {
	s.LastAttempt = nil
	if s.CurrentUser == nil {
		s.View = ViewLogin
		return
	}
	s.View = ViewDashboard
}

// Score 按条目顺序精确比对录入值与标准答案
func Score(image model.TrainingImage, inputs []string) []model.UserResultItem {
	items := make([]model.UserResultItem, 0, len(image.Items))
	for i, item := range image.Items {
		var input string
		if i < len(inputs) {
			input = inputs[i]
		}
		items = append(items, model.UserResultItem{
			Prompt:    item.Prompt,
			UserInput: input,
			IsCorrect: input == item.CorrectAnswer,
		})
	}
	return items
}

// CompleteTraining 汇总所有图片的录入结果并上报，成功后进入成绩界面
func (s *Session) CompleteTraining(ctx context.Context, entries []TrainingEntry) error {
	if s.CurrentUser == nil {
		return errors.New("no user logged in")
	}

	byID := make(map[uint]model.TrainingImage, len(s.TrainingData))
	for _, img := range s.TrainingData {
		byID[img.ID] = img
	}

	results := make([]model.UserResult, 0, len(entries))
	for _, entry := range entries {
		img, ok := byID[entry.ImageID]
		if !ok {
			return fmt.Errorf("unknown training image %d", entry.ImageID)
		}
		results = append(results, model.UserResult{
			ImageID:   entry.ImageID,
			Items:     Score(img, entry.Inputs),
			TimeTaken: entry.TimeTaken,
		})
	}

	attempt := model.NewAttempt(s.CurrentUser.Username, time.Now().UnixMilli(), results)
	saved, err := s.Client.SaveAttempt(ctx, attempt)
	if err != nil {
		return err
	}

	s.LastAttempt = saved
	s.AllAttempts = append(s.AllAttempts, *saved)
	s.View = ViewResults
	return nil
}

// SaveUsers 提交用户清单并以服务端返回结果刷新本地状态
func (s *Session) SaveUsers(ctx context.Context, users []model.User) error {
	saved, err := s.Client.SaveUsers(ctx, users)
	if err != nil {
		return err
	}
	s.Users = saved
	return nil
}

// SaveTrainingData 乐观更新：本地先生效，提交失败时回滚
func (s *Session) SaveTrainingData(ctx context.Context, images []model.TrainingImage) error {
	previous := s.TrainingData
	s.TrainingData = images
	if err := s.Client.SaveTrainingData(ctx, images); err != nil {
		s.TrainingData = previous
		return err
	}
	return nil
}

// ExportToFile 导出备份到带日期的 JSON 文件，返回写入的文件名
func (s *Session) ExportToFile(ctx context.Context, dir string) (string, error) {
	backup, err := s.Client.Export(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("edms-fdf-training-backup-%s.json", time.Now().Format("2006-01-02"))
	path := dir + string(os.PathSeparator) + name
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// ImportFromFile 校验备份文件结构后整体导入，并重新拉取全量数据
func (s *Session) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var shape struct {
		Users        []json.RawMessage `json:"users"`
		TrainingData []json.RawMessage `json:"trainingData"`
		Attempts     []json.RawMessage `json:"attempts"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return errors.New("Invalid backup file structure.")
	}
	if shape.Users == nil || shape.TrainingData == nil || shape.Attempts == nil {
		return errors.New("Invalid backup file structure.")
	}

	var backup model.AppBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return errors.New("Invalid backup file structure.")
	}

	if err := s.Client.Import(ctx, &backup); err != nil {
		return err
	}
	return s.Bootstrap(ctx)
}
