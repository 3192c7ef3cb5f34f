// Package store owns the four entities and their integrity rules. Every
// multi-row mutation (cascade and set-null deletes) runs inside a single
// transaction so a failing request never leaves partial state behind.
package store

import "gorm.io/gorm"

// DefaultPageSize bounds list windows when the caller passes no limit.
const DefaultPageSize = 100

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func pageBounds(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}

	if limit <= 0 || limit > DefaultPageSize {
		limit = DefaultPageSize
	}

	return skip, limit
}
