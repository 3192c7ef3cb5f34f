package store

import (
	"encoding/json"
	"errors"

	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewEvaluation struct {
	PlayerID    uint
	EvaluatorID *uint
	Sport       string
	Criteria    map[string]float64
	Score       float64
	Notes       string
}

// EvaluationUpdate carries the optional fields of a partial evaluation
// update. A non-nil Criteria replaces the stored map wholesale.
type EvaluationUpdate struct {
	Sport    *string
	Criteria map[string]float64
	Score    *float64
	Notes    *string
}

func criteriaJSON(criteria map[string]float64) (datatypes.JSON, error) {
	if criteria == nil {
		criteria = map[string]float64{}
	}

	raw, err := json.Marshal(criteria)

	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}

// CreateEvaluation persists a new evaluation after checking the referenced
// player exists. Score is stored as given, never recomputed from criteria.
func (s *Store) CreateEvaluation(input NewEvaluation) (*models.Evaluation, error) {
	if input.Sport == "" {
		return nil, apperrors.Validation("sport is required")
	}

	var player models.Player

	if err := s.db.First(&player, input.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("player %d does not exist", input.PlayerID)
		}
		return nil, err
	}

	criteria, err := criteriaJSON(input.Criteria)

	if err != nil {
		return nil, err
	}

	evaluation := models.Evaluation{
		PlayerID:    input.PlayerID,
		EvaluatorID: input.EvaluatorID,
		Sport:       input.Sport,
		Criteria:    criteria,
		Score:       input.Score,
		Notes:       input.Notes,
	}

	if err := s.db.Create(&evaluation).Error; err != nil {
		return nil, err
	}

	return &evaluation, nil
}

// ListEvaluations returns a creation-ordered page, optionally restricted to a
// single player.
func (s *Store) ListEvaluations(skip, limit int, playerID *uint) ([]models.Evaluation, error) {
	skip, limit = pageBounds(skip, limit)

	query := s.db.Order("id").Offset(skip).Limit(limit)

	if playerID != nil {
		query = query.Where("player_id = ?", *playerID)
	}

	var evaluations []models.Evaluation

	if err := query.Find(&evaluations).Error; err != nil {
		return nil, err
	}

	return evaluations, nil
}

func (s *Store) GetEvaluation(id uint) (*models.Evaluation, error) {
	var evaluation models.Evaluation

	if err := s.db.First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("evaluation not found")
		}
		return nil, err
	}

	return &evaluation, nil
}

func (s *Store) UpdateEvaluation(id uint, update EvaluationUpdate) (*models.Evaluation, error) {
	var evaluation models.Evaluation

	if err := s.db.First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("evaluation not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.Sport != nil {
		if *update.Sport == "" {
			return nil, apperrors.Validation("sport must not be empty")
		}
		updates["sport"] = *update.Sport
	}

	if update.Criteria != nil {
		criteria, err := criteriaJSON(update.Criteria)
		if err != nil {
			return nil, err
		}
		updates["criteria"] = criteria
	}

	if update.Score != nil {
		updates["score"] = *update.Score
	}

	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) == 0 {
		return &evaluation, nil
	}

	if err := s.db.Model(&evaluation).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &evaluation, nil
}

func (s *Store) DeleteEvaluation(id uint) error {
	var evaluation models.Evaluation

	if err := s.db.First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("evaluation not found")
		}
		return err
	}

	return s.db.Delete(&evaluation).Error
}
