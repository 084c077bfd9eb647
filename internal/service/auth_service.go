package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"edms_training_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// CredentialVerifier 核对口令。当前实现是明文比较——沿袭下来的已知弱点，
// 收在接口后面是为了之后换成散列方案时不动调用方。
type CredentialVerifier interface {
	Verify(stored, given string) bool
}

type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, given string) bool {
	return stored == given
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Verifier CredentialVerifier
}

func NewAuthService(userRepo *repository.UserRepository, verifier CredentialVerifier) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Verifier: verifier,
	}
}

// Login 字段缺失时在查库前拒绝；成功时返回不含密码的用户记录。
// 不签发任何会话或令牌，客户端自行在内存里持有返回的记录。
func (s *AuthService) Login(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, util.ErrMissingCredentials
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.Verifier.Verify(user.Password, password) {
		return nil, util.ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}
