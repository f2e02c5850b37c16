package feeder

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

var (
	// ErrUserNotFound is returned when the username has no matching row.
	ErrUserNotFound = errors.New("feeder: user not found")
	// ErrInvalidPassword is returned when the password does not verify.
	ErrInvalidPassword = errors.New("feeder: invalid password")
)

// WeakPasswordError carries the user-facing reason a new password was
// rejected by the policy.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return "feeder: weak password: " + e.Reason
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("feeder: hash password: %w", err)
	}
	return string(hash), nil
}

func (f *Feeder) login(username, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)

	var user models.User
	err := f.Db.Conn.Take(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		logger.Warn("Login rejected", zap.String("username", username))
		return nil, ErrInvalidPassword
	}

	logger.Info("Login accepted", zap.String("username", username))
	return &user, nil
}

// validateNewPassword enforces the password policy: at least 8 characters and
// at least two of digits, uppercase, lowercase, special characters.
func validateNewPassword(password string) error {
	if len(password) < 8 {
		return &WeakPasswordError{Reason: "Password must be at least 8 characters"}
	}

	classes := 0
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		classes++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		classes++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		classes++
	}
	if strings.ContainsAny(password, "~`!@#$%^&*()_-=+[]{}|\\;:'\"<,>./?") {
		classes++
	}

	if classes < 2 {
		return &WeakPasswordError{Reason: "Password must contain at least two of: digits, uppercase, lowercase, or special characters"}
	}
	return nil
}

func (f *Feeder) changePassword(username, oldPassword, newPassword string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)

	var user models.User
	err := f.Db.Conn.Take(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrInvalidPassword
	}

	if err := validateNewPassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	err = f.Db.Conn.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", hash).Error
	if err != nil {
		return err
	}

	logger.Info("Password changed", zap.String("username", username))
	return nil
}

type IAuthImpl struct {
	feeder *Feeder
}

func (ia *IAuthImpl) Login(username, password string) (*models.User, error) {
	return ia.feeder.login(username, password)
}

func (ia *IAuthImpl) ChangePassword(username, oldPassword, newPassword string) error {
	return ia.feeder.changePassword(username, oldPassword, newPassword)
}

func (f *Feeder) GetIAuth() IAuth {
	return &IAuthImpl{feeder: f}
}
