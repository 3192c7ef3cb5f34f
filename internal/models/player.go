package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	gorm.Model

	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	DateOfBirth *time.Time
	Sport       string `gorm:"not null;index"`
	Position    string
	HeightCm    *int
	WeightKg    *int

	// Relationships
	Evaluations      []Evaluation     `gorm:"foreignKey:PlayerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	WatchlistEntries []WatchlistEntry `gorm:"foreignKey:PlayerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
