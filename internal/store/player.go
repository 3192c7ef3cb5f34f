package store

import (
	"errors"
	"time"

	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"gorm.io/gorm"
)

type NewPlayer struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Sport       string
	Position    string
	HeightCm    *int
	WeightKg    *int
}

// PlayerUpdate carries the optional fields of a partial player update.
type PlayerUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Sport       *string
	Position    *string
	HeightCm    *int
	WeightKg    *int
}

func (s *Store) CreatePlayer(input NewPlayer) (*models.Player, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, apperrors.Validation("first_name and last_name are required")
	}

	if input.Sport == "" {
		return nil, apperrors.Validation("sport is required")
	}

	player := models.Player{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Sport:       input.Sport,
		Position:    input.Position,
		HeightCm:    input.HeightCm,
		WeightKg:    input.WeightKg,
	}

	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

// ListPlayers returns at most limit players ordered by creation, optionally
// restricted to an exact sport match. An empty page is not an error.
func (s *Store) ListPlayers(skip, limit int, sport string) ([]models.Player, error) {
	skip, limit = pageBounds(skip, limit)

	query := s.db.Order("id").Offset(skip).Limit(limit)

	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	var players []models.Player

	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}

func (s *Store) GetPlayer(id uint) (*models.Player, error) {
	var player models.Player

	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("player not found")
		}
		return nil, err
	}

	return &player, nil
}

func (s *Store) UpdatePlayer(id uint, update PlayerUpdate) (*models.Player, error) {
	var player models.Player

	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("player not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.FirstName != nil {
		if *update.FirstName == "" {
			return nil, apperrors.Validation("first_name must not be empty")
		}
		updates["first_name"] = *update.FirstName
	}

	if update.LastName != nil {
		if *update.LastName == "" {
			return nil, apperrors.Validation("last_name must not be empty")
		}
		updates["last_name"] = *update.LastName
	}

	if update.DateOfBirth != nil {
		updates["date_of_birth"] = *update.DateOfBirth
	}

	if update.Sport != nil {
		if *update.Sport == "" {
			return nil, apperrors.Validation("sport must not be empty")
		}
		updates["sport"] = *update.Sport
	}

	if update.Position != nil {
		updates["position"] = *update.Position
	}

	if update.HeightCm != nil {
		updates["height_cm"] = *update.HeightCm
	}

	if update.WeightKg != nil {
		updates["weight_kg"] = *update.WeightKg
	}

	if len(updates) == 0 {
		return &player, nil
	}

	if err := s.db.Model(&player).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &player, nil
}

// DeletePlayer removes the player together with every evaluation and
// watchlist entry that references it, in one transaction.
func (s *Store) DeletePlayer(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player

		if err := tx.First(&player, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("player not found")
			}
			return err
		}

		if err := tx.Where("player_id = ?", id).Delete(&models.Evaluation{}).Error; err != nil {
			return err
		}

		if err := tx.Where("player_id = ?", id).Delete(&models.WatchlistEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(&player).Error
	})
}
