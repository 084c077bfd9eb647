package service

import (
	"edms_training_backend/internal/model"
	"edms_training_backend/internal/repository"
	"edms_training_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), PlaintextVerifier{})
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login("admin", "admin")
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Empty(t, user.Password, "password must never leave the service")
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login("admin", "nope")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("ghost", "admin")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing password", "admin", ""},
		{"missing username", "", "admin"},
		{"both missing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, util.ErrMissingCredentials)
		})
	}
}
