package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the user does not exist, so a
// failed login costs the same whether or not the username is taken.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("login-timing-pad"), bcrypt.DefaultCost)

// AuthService registers and authenticates users.
type AuthService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewAuthService(db *gorm.DB, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{DB: db, BcryptCost: bcryptCost}
}

// Register creates a user with a salted password hash. A taken
// username or email yields ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, storage(err)
	}
	if count > 0 {
		return nil, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		// the unique indexes catch a concurrent registration
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, ErrConflict
		}
		return nil, storage(err)
	}
	return &user, nil
}

// Login verifies a username/password pair. Unknown users and wrong
// passwords return the same ErrAuth.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrAuth
	}
	if err != nil {
		return nil, storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuth
	}
	return &user, nil
}

// GetUser loads a user's public record by id.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storage(err)
	}
	return &user, nil
}
