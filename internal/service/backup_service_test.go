package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBackupService(t *testing.T) (*BackupService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewBackupService(
		repository.NewUserRepository(db),
		repository.NewTrainingRepository(db),
		repository.NewAttemptRepository(db),
		db,
	)
	return svc, db
}

func TestExportIncludesPasswords(t *testing.T) {
	svc, _ := newBackupService(t)

	backup, err := svc.Export()
	require.NoError(t, err)

	require.Len(t, backup.Users, 1)
	assert.Equal(t, "admin", backup.Users[0].Username)
	assert.Equal(t, "admin", backup.Users[0].Password)
	assert.Len(t, backup.TrainingData, 3)
	assert.NotNil(t, backup.Attempts)
}

func TestImportRestoresSnapshotExactly(t *testing.T) {
	svc, db := newBackupService(t)

	// 准备一份有学员和成绩的状态
	tanaka := model.User{Username: "tanaka", Password: "pw", Role: model.RoleTrainee}
	require.NoError(t, db.Create(&tanaka).Error)

	attempt := model.NewAttempt("tanaka", 1700000000000, []model.UserResult{
		{ImageID: 1, Items: []model.UserResultItem{{Prompt: "660", UserInput: "リソナ", IsCorrect: true}}, TimeTaken: 12},
	})
	require.NoError(t, db.Create(&attempt).Error)

	before, err := svc.Export()
	require.NoError(t, err)

	// 导入前把库改得面目全非
	require.NoError(t, db.Where("1 = 1").Delete(&model.TrainingAttempt{}).Error)
	intruder := model.User{Username: "intruder", Password: "x", Role: model.RoleExaminer}
	require.NoError(t, db.Create(&intruder).Error)

	require.NoError(t, svc.Import(before))

	after, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportPreservesIDs(t *testing.T) {
	svc, _ := newBackupService(t)

	backup := &model.AppBackup{
		Users: []model.User{
			{ID: 5, Username: "admin", Password: "admin", Role: model.RoleAdmin},
		},
		TrainingData: []model.TrainingImage{
			{ID: 7, ImageURL: "https://example.com/a.png", Items: []model.TrainingItem{
				{Prompt: "1", CorrectAnswer: "イチ"},
			}},
		},
		Attempts: []model.TrainingAttempt{
			{ID: 9, Username: "admin", Timestamp: 1, Results: model.UserResults{}},
		},
	}

	require.NoError(t, svc.Import(backup))

	after, err := svc.Export()
	require.NoError(t, err)

	require.Len(t, after.Users, 1)
	assert.Equal(t, uint(5), after.Users[0].ID)
	require.Len(t, after.TrainingData, 1)
	assert.Equal(t, uint(7), after.TrainingData[0].ID)
	require.Len(t, after.Attempts, 1)
	assert.Equal(t, uint(9), after.Attempts[0].ID)
}

func TestImportThenInsertDoesNotCollide(t *testing.T) {
	svc, db := newBackupService(t)

	backup := &model.AppBackup{
		Users: []model.User{
			{ID: 3, Username: "admin", Password: "admin", Role: model.RoleAdmin},
		},
		TrainingData: []model.TrainingImage{},
		Attempts:     []model.TrainingAttempt{},
	}
	require.NoError(t, svc.Import(backup))

	fresh := model.User{Username: "tanaka", Password: "pw", Role: model.RoleTrainee}
	require.NoError(t, db.Create(&fresh).Error)
	assert.NotZero(t, fresh.ID)
	assert.NotEqual(t, uint(3), fresh.ID)
}

func TestImportRollsBackOnFailure(t *testing.T) {
	svc, db := newBackupService(t)

	before, err := svc.Export()
	require.NoError(t, err)

	// 用户名重复导致中途失败
	bad := &model.AppBackup{
		Users: []model.User{
			{ID: 1, Username: "dup", Password: "a", Role: model.RoleTrainee},
			{ID: 2, Username: "dup", Password: "b", Role: model.RoleTrainee},
		},
		TrainingData: []model.TrainingImage{},
		Attempts:     []model.TrainingAttempt{},
	}
	require.Error(t, svc.Import(bad))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	after, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
