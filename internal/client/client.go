package client

import (
	"bytes"
	"context"
	"edms_training_backend/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client 后端 API 的 Go 封装，终端工具与测试共用
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// BootstrapData GET /api/data 的响应体
type BootstrapData struct {
	Users        []model.User            `json:"users"`
	TrainingData []model.TrainingImage   `json:"trainingData"`
	AllAttempts  []model.TrainingAttempt `json:"allAttempts"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// FetchData 拉取全量启动数据
func (c *Client) FetchData(ctx context.Context) (*BootstrapData, error) {
	var data BootstrapData
	if err := c.do(ctx, http.MethodGet, "/api/data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Login 凭证校验，成功时返回不含密码的用户信息
func (c *Client) Login(ctx context.Context, username, password string) (*model.User, error) {
	payload := map[string]string{"username": username, "password": password}
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/api/login", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUsers 整体替换用户清单，返回替换后的清单（密码已剥离）
func (c *Client) SaveUsers(ctx context.Context, users []model.User) ([]model.User, error) {
	var saved []model.User
	if err := c.do(ctx, http.MethodPost, "/api/users", users, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// SaveTrainingData 整体替换训练图集
func (c *Client) SaveTrainingData(ctx context.Context, images []model.TrainingImage) error {
	return c.do(ctx, http.MethodPost, "/api/training-data", images, nil)
}

// SaveAttempt 上报一次训练成绩，返回带服务端 ID 的记录
func (c *Client) SaveAttempt(ctx context.Context, attempt model.TrainingAttempt) (*model.TrainingAttempt, error) {
	var saved model.TrainingAttempt
	if err := c.do(ctx, http.MethodPost, "/api/attempts", attempt, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Export 导出全量备份
func (c *Client) Export(ctx context.Context) (*model.AppBackup, error) {
	var backup model.AppBackup
	if err := c.do(ctx, http.MethodGet, "/api/export", nil, &backup); err != nil {
		return nil, err
	}
	return &backup, nil
}

// Import 以备份内容整体覆盖服务端数据
func (c *Client) Import(ctx context.Context, backup *model.AppBackup) error {
	return c.do(ctx, http.MethodPost, "/api/import", backup, nil)
}
