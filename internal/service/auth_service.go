package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/model"
	"hrdashboard/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 8
)

// AuthService verifies staff credentials against the admins table.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.Admin, error)
	ChangePassword(ctx context.Context, email, current, next, confirm string) error
	EnsureAdmin(ctx context.Context, email, password string, resetExisting bool) (created bool, err error)
}

type authService struct {
	adminRepo repository.AdminRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login returns the admin when email and password match. Unknown email,
// wrong password and empty input all yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return admin, nil
}

// ChangePassword replaces the password of the signed in admin after
// checking the current one.
func (s *authService) ChangePassword(ctx context.Context, email, current, next, confirm string) error {
	if len(next) < minPasswordLength {
		return apperrors.NewValidationError("new_password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if next != confirm {
		return apperrors.ErrPasswordMismatch
	}

	admin, err := s.Login(ctx, email, current)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(ctx, admin.ID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin when missing. An existing admin keeps its
// password unless resetExisting is set.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string, resetExisting bool) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, apperrors.NewValidationError("email", "required")
	}
	if len(password) < minPasswordLength {
		return false, apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check admin existence: %w", err)
	}
	if existing != nil && !resetExisting {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if existing != nil {
		if err := s.adminRepo.UpdatePassword(ctx, existing.ID, string(hash)); err != nil {
			return false, fmt.Errorf("reset password: %w", err)
		}
		return false, nil
	}

	if err := s.adminRepo.Create(ctx, &model.Admin{Email: email, PasswordHash: string(hash)}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
