package models

import (
	"time"
)

// WatchlistEntry marks a player an account is keeping an eye on.
// Deleting either side removes the entry.
type WatchlistEntry struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID   uint `gorm:"not null;index"`
	PlayerID uint `gorm:"not null;index"`
	Notes    string

	// Relationships
	User   Account `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Player Player  `gorm:"foreignKey:PlayerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
