package store

import (
	"context"
	"errors"

	"food-truck-api/models"

	"gorm.io/gorm"
)

// ToggleFavorite removes the favorite if present, otherwise adds it.
// Returns whether the truck is favorited after the call. A concurrent
// double-add loses to the unique index and is reported as favorited.
func (s *Store) ToggleFavorite(ctx context.Context, userID, truckID uint) (bool, error) {
	favorited := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("user_id = ? AND truck_id = ?", userID, truckID).
			First(&existing).Error
		if err == nil {
			favorited = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		favorited = true
		return tx.Create(&models.Favorite{UserID: userID, TruckID: truckID}).Error
	})
	if errors.Is(translate(err), ErrConflict) {
		// Lost a race with an identical add; the favorite exists.
		return true, nil
	}
	return favorited, translate(err)
}

func (s *Store) IsFavorite(ctx context.Context, userID, truckID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND truck_id = ?", userID, truckID).
		Count(&count).Error
	return count > 0, translate(err)
}

// ListFavorites returns the trucks a user has favorited.
func (s *Store) ListFavorites(ctx context.Context, userID uint) ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.truck_id = trucks.id").
		Where("favorites.user_id = ?", userID).
		Find(&trucks).Error
	return trucks, translate(err)
}
