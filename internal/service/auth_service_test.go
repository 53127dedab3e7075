package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/model"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	admin := &model.Admin{ID: 1, Email: "hr@example.com", PasswordHash: hashed(t, "correct-horse")}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockAdminRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "hr@example.com",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "hr@example.com").Return(admin, nil)
			},
		},
		{
			name:     "email is normalized",
			email:    "  HR@Example.com ",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "hr@example.com").Return(admin, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "hr@example.com",
			password: "battery-staple",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "hr@example.com").Return(admin, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:      "empty password",
			email:     "hr@example.com",
			setupMock: func(m *MockAdminRepository) {},
			wantErr:   apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo)

			got, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "hr@example.com", got.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("FindByEmail", mock.Anything, "hr@example.com").Return(nil, errors.New("connection reset"))

	_, err := NewAuthService(repo).Login(context.Background(), "hr@example.com", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	admin := &model.Admin{ID: 7, Email: "hr@example.com", PasswordHash: hashed(t, "old-password")}

	t.Run("success", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "hr@example.com").Return(admin, nil)
		repo.On("UpdatePassword", mock.Anything, uint(7), mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")) == nil
		})).Return(nil)

		err := NewAuthService(repo).ChangePassword(context.Background(), "hr@example.com", "old-password", "new-password", "new-password")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "hr@example.com").Return(admin, nil)

		err := NewAuthService(repo).ChangePassword(context.Background(), "hr@example.com", "guess", "new-password", "new-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		repo := new(MockAdminRepository)

		err := NewAuthService(repo).ChangePassword(context.Background(), "hr@example.com", "old-password", "new-password", "new-passw0rd")
		assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("too short", func(t *testing.T) {
		repo := new(MockAdminRepository)

		err := NewAuthService(repo).ChangePassword(context.Background(), "hr@example.com", "old-password", "short", "short")
		var verr *apperrors.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "new_password")
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "hr@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Admin) bool {
			return a.Email == "hr@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("initial-pass")) == nil
		})).Return(nil)

		created, err := NewAuthService(repo).EnsureAdmin(context.Background(), "HR@example.com", "initial-pass", false)
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("resets existing admin", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "hr@example.com").Return(&model.Admin{ID: 3, Email: "hr@example.com"}, nil)
		repo.On("UpdatePassword", mock.Anything, uint(3), mock.AnythingOfType("string")).Return(nil)

		created, err := NewAuthService(repo).EnsureAdmin(context.Background(), "hr@example.com", "initial-pass", true)
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("keeps existing password without reset", func(t *testing.T) {
		repo := new(MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "hr@example.com").
			Return(&model.Admin{ID: 3, Email: "hr@example.com", PasswordHash: hashed(t, "changed-in-settings")}, nil)

		created, err := NewAuthService(repo).EnsureAdmin(context.Background(), "hr@example.com", "initial-pass", false)
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		_, err := NewAuthService(new(MockAdminRepository)).EnsureAdmin(context.Background(), "hr@example.com", "123", true)
		var verr *apperrors.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
