package model

// AppBackup 完整快照，导出/导入的基本单位。用户带密码，便于原样恢复。
// swagger:model AppBackup
type AppBackup struct {
	Users        []User            `json:"users"`
	TrainingData []TrainingImage   `json:"trainingData"`
	Attempts     []TrainingAttempt `json:"attempts"`
}
