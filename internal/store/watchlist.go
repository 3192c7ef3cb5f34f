package store

import (
	"errors"

	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"gorm.io/gorm"
)

// CreateWatchlistEntry adds a player to an account's watchlist. The account
// comes from a verified token; only the player reference needs checking.
func (s *Store) CreateWatchlistEntry(userID, playerID uint, notes string) (*models.WatchlistEntry, error) {
	var player models.Player

	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("player not found")
		}
		return nil, err
	}

	entry := models.WatchlistEntry{
		UserID:   userID,
		PlayerID: playerID,
		Notes:    notes,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListWatchlistEntries returns a creation-ordered page. A non-nil userID
// restricts the page to that owner; admins pass nil to see every entry.
func (s *Store) ListWatchlistEntries(skip, limit int, userID *uint) ([]models.WatchlistEntry, error) {
	skip, limit = pageBounds(skip, limit)

	query := s.db.Order("id").Offset(skip).Limit(limit)

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var entries []models.WatchlistEntry

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *Store) GetWatchlistEntry(id uint) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry

	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("watchlist entry not found")
		}
		return nil, err
	}

	return &entry, nil
}

func (s *Store) DeleteWatchlistEntry(id uint) error {
	var entry models.WatchlistEntry

	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("watchlist entry not found")
		}
		return err
	}

	return s.db.Delete(&entry).Error
}
