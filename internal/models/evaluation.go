package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Evaluation is a scout's or coach's written assessment of a player.
// EvaluatorID is nullable: evaluations outlive the account that wrote them.
type Evaluation struct {
	gorm.Model

	PlayerID    uint           `gorm:"not null;index"`
	EvaluatorID *uint          `gorm:"index"`
	Sport       string         `gorm:"not null"`
	Criteria    datatypes.JSON `gorm:"type:jsonb"`
	Score       float64        `gorm:"not null"`
	Notes       string

	// Relationships
	Player    Player   `gorm:"foreignKey:PlayerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Evaluator *Account `gorm:"foreignKey:EvaluatorID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
