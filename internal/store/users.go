package store

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/labkeep-dev/labkeep/internal/auth"
	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/gorm"
)

const (
	usernameMinLen = 4
	usernameMaxLen = 15
	emailMaxLen    = 50
	passwordMinLen = 8
	passwordMaxLen = 80
)

// UserStore persists user accounts and checks credentials.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new account with the user role. The raw password
// is bcrypt-hashed before it touches the database; on any failure no
// record is persisted.
func (s *UserStore) Register(ctx context.Context, username, email, rawPassword string) (models.User, error) {
	if err := validateSignup(username, email, rawPassword); err != nil {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("username %q: %w", username, ErrDuplicate)
		}
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("email %q: %w", email, ErrDuplicate)
		}
		return mapDuplicate(tx.Create(&user).Error, "user "+username)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves a username/password pair to the stored account.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal which field was at fault.
func (s *UserStore) Authenticate(ctx context.Context, username, rawPassword string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, auth.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, rawPassword) {
		return models.User{}, auth.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if no account with
// that username exists yet. Called once at startup.
func (s *UserStore) EnsureAdmin(ctx context.Context, username, email, rawPassword string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	return s.db.WithContext(ctx).Create(&admin).Error
}

func validateSignup(username, email, rawPassword string) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return fmt.Errorf("username must be %d-%d characters: %w", usernameMinLen, usernameMaxLen, ErrValidation)
	}
	if email == "" || len(email) > emailMaxLen {
		return fmt.Errorf("email must be 1-%d characters: %w", emailMaxLen, ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("malformed email %q: %w", email, ErrValidation)
	}
	if len(rawPassword) < passwordMinLen || len(rawPassword) > passwordMaxLen {
		return fmt.Errorf("password must be %d-%d characters: %w", passwordMinLen, passwordMaxLen, ErrValidation)
	}
	return nil
}
