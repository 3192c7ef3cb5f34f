package store

import (
	"errors"

	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"gorm.io/gorm"
)

const badCredentials = "incorrect username or password"

// AccountUpdate carries the optional fields of a partial account update.
// Nil pointers leave the stored value untouched.
type AccountUpdate struct {
	Username *string
	Email    *string
	Role     *string
}

func (s *Store) RegisterAccount(username, email, password, role string) (*models.Account, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.Validation("username, email and password are required")
	}

	if role == "" {
		role = models.RoleUser
	}

	if !models.ValidRole(role) {
		return nil, apperrors.Validation("invalid role %q", role)
	}

	var existing models.Account

	err := s.db.Where("username = ?", username).First(&existing).Error

	if err == nil {
		return nil, apperrors.Conflict("username already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, apperrors.Conflict("email already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return nil, err
	}

	account := models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}

// AuthenticateAccount verifies a username/password pair. An unknown username
// and a wrong password produce the same error.
func (s *Store) AuthenticateAccount(username, password string) (*models.Account, error) {
	var account models.Account

	if err := s.db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authentication(badCredentials)
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, apperrors.Authentication(badCredentials)
	}

	return &account, nil
}

func (s *Store) GetAccount(id uint) (*models.Account, error) {
	var account models.Account

	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("account not found")
		}
		return nil, err
	}

	return &account, nil
}

func (s *Store) UpdateAccount(id uint, update AccountUpdate) (*models.Account, error) {
	var account models.Account

	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("account not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.Username != nil {
		if *update.Username == "" {
			return nil, apperrors.Validation("username must not be empty")
		}

		if *update.Username != account.Username {
			var existing models.Account
			err := s.db.Where("username = ? AND id != ?", *update.Username, id).First(&existing).Error
			if err == nil {
				return nil, apperrors.Conflict("username already registered")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}

		updates["username"] = *update.Username
	}

	if update.Email != nil {
		if *update.Email == "" {
			return nil, apperrors.Validation("email must not be empty")
		}

		if *update.Email != account.Email {
			var existing models.Account
			err := s.db.Where("email = ? AND id != ?", *update.Email, id).First(&existing).Error
			if err == nil {
				return nil, apperrors.Conflict("email already registered")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}

		updates["email"] = *update.Email
	}

	if update.Role != nil {
		if !models.ValidRole(*update.Role) {
			return nil, apperrors.Validation("invalid role %q", *update.Role)
		}
		updates["role"] = *update.Role
	}

	if len(updates) == 0 {
		return &account, nil
	}

	if err := s.db.Model(&account).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &account, nil
}

// DeleteAccount removes the account, detaches its evaluations (set-null) and
// deletes its watchlist entries, all in one transaction. Evaluations survive
// as historical record; watchlist entries are personal and go with the owner.
// The account row is removed outright: a soft-deleted row would keep holding
// the username/email unique index and block re-registration.
func (s *Store) DeleteAccount(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account

		if err := tx.First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("account not found")
			}
			return err
		}

		if err := tx.Model(&models.Evaluation{}).Where("evaluator_id = ?", id).Update("evaluator_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.WatchlistEntry{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&account).Error
	})
}
