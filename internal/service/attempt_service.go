package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"edms_training_backend/pkg/monitoring"
)

type AttemptService struct {
	AttemptRepo *repository.AttemptRepository
}

func NewAttemptService(attemptRepo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{AttemptRepo: attemptRepo}
}

func (s *AttemptService) List() ([]model.TrainingAttempt, error) {
	return s.AttemptRepo.FindAll()
}

// Record 原样落库并回填 store 分配的 id。汇总字段（totalItems、accuracy 等）
// 由客户端计算，服务端不做重算或一致性校验。
func (s *AttemptService) Record(attempt *model.TrainingAttempt) error {
	attempt.ID = 0
	if attempt.Results == nil {
		attempt.Results = model.UserResults{}
	}

	if err := s.AttemptRepo.Create(attempt); err != nil {
		return err
	}

	monitoring.AttemptsRecorded.Inc()
	return nil
}
