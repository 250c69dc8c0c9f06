package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors handlers can match on. ErrConflict is a storage-level
// uniqueness violation detected at commit time, distinct from request-time
// validation so concurrent duplicate writes cannot both slip through.
var (
	ErrNotFound   = errors.New("store: not found")
	ErrConflict   = errors.New("store: unique constraint violated")
	ErrMissingRef = errors.New("store: required reference missing")
)

// Review listing caps
const (
	RecentReviewLimit = 4
	ReviewListLimit   = 50
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps gorm errors onto the store's sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
