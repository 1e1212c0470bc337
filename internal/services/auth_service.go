package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"linebot-admin/internal/models"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// IsFreshInstall reports whether no admin account exists yet.
func (s *AuthService) IsFreshInstall(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateFirstAdmin creates the initial admin. It fails once any user exists.
func (s *AuthService) CreateFirstAdmin(ctx context.Context, email, password string) (*models.User, error) {
	fresh, err := s.IsFreshInstall(ctx)
	if err != nil {
		return nil, err
	}
	if !fresh {
		return nil, models.ErrAlreadyInstalled
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	log.WithField("email", email).Info("first admin created")
	return &user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

// ResetPassword sets a new password for email, creating the admin when the
// account does not exist.
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) (created bool, err error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Email: email, Password: string(hashed), Role: "ADMIN"}
		return true, s.db.WithContext(ctx).Create(&user).Error
	}
	if err != nil {
		return false, err
	}

	user.Password = string(hashed)
	return false, s.db.WithContext(ctx).Save(&user).Error
}
