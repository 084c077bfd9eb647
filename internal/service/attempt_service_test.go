package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttemptService(t *testing.T) *AttemptService {
	t.Helper()
	db := newTestDB(t)
	return NewAttemptService(repository.NewAttemptRepository(db))
}

func TestAttemptRecordAssignsID(t *testing.T) {
	svc := newAttemptService(t)

	attempt := model.NewAttempt("tanaka", 1700000000000, []model.UserResult{
		{
			ImageID: 1,
			Items: []model.UserResultItem{
				{Prompt: "243,776", UserInput: "PE シヤカイホケンリヨウトウ*", IsCorrect: true},
			},
			TimeTaken: 30,
		},
	})

	require.NoError(t, svc.Record(&attempt))
	assert.NotZero(t, attempt.ID)

	attempts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "tanaka", attempts[0].Username)
	assert.Equal(t, 100.0, attempts[0].Accuracy)
	require.Len(t, attempts[0].Results, 1)
	assert.Equal(t, uint(1), attempts[0].Results[0].ImageID)
}

// 汇总字段由调用方给出，服务端原样入库不做复算
func TestAttemptRecordStoresTotalsVerbatim(t *testing.T) {
	svc := newAttemptService(t)

	attempt := model.TrainingAttempt{
		Username:     "tanaka",
		Timestamp:    1700000000000,
		Results:      model.UserResults{},
		TotalTime:    999,
		TotalItems:   50,
		CorrectItems: 1,
		Accuracy:     2.0,
	}

	require.NoError(t, svc.Record(&attempt))

	attempts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, int64(999), attempts[0].TotalTime)
	assert.Equal(t, 50, attempts[0].TotalItems)
	assert.Equal(t, 1, attempts[0].CorrectItems)
	assert.Equal(t, 2.0, attempts[0].Accuracy)
}

func TestAttemptRecordNilResults(t *testing.T) {
	svc := newAttemptService(t)

	attempt := model.TrainingAttempt{
		Username:  "tanaka",
		Timestamp: 1700000000000,
	}
	require.NoError(t, svc.Record(&attempt))

	attempts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.NotNil(t, attempts[0].Results)
	assert.Empty(t, attempts[0].Results)
}

func TestAttemptClientIDIgnored(t *testing.T) {
	svc := newAttemptService(t)

	first := model.TrainingAttempt{ID: 777, Username: "a", Timestamp: 1}
	require.NoError(t, svc.Record(&first))
	assert.NotEqual(t, uint(777), first.ID)
}
