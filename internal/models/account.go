package models

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
	RoleScout = "scout"
	RoleUser  = "user"
)

// Roles lists every role an account may hold.
var Roles = []string{RoleAdmin, RoleCoach, RoleScout, RoleUser}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Account struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`

	// Relationships
	Evaluations      []Evaluation     `gorm:"foreignKey:EvaluatorID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	WatchlistEntries []WatchlistEntry `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
