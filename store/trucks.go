package store

import (
	"context"

	"food-truck-api/models"

	"gorm.io/gorm"
)

// CreateTruck inserts a new truck. Duplicate name or email surfaces
// as ErrConflict.
func (s *Store) CreateTruck(ctx context.Context, truck *models.Truck) error {
	if truck.UserID == 0 {
		return ErrMissingRef
	}
	return translate(s.db.WithContext(ctx).Create(truck).Error)
}

func (s *Store) GetTruck(ctx context.Context, id uint) (*models.Truck, error) {
	var truck models.Truck
	if err := s.db.WithContext(ctx).First(&truck, id).Error; err != nil {
		return nil, translate(err)
	}
	return &truck, nil
}

func (s *Store) GetTruckByOwner(ctx context.Context, userID uint) (*models.Truck, error) {
	var truck models.Truck
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&truck).Error; err != nil {
		return nil, translate(err)
	}
	return &truck, nil
}

func (s *Store) CountTrucksByOwner(ctx context.Context, userID uint) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Truck{}).
		Where("user_id = ?", userID).Count(&count).Error
	return int(count), translate(err)
}

// ListTrucks returns all trucks, or those whose name contains search.
func (s *Store) ListTrucks(ctx context.Context, search string) ([]models.Truck, error) {
	var trucks []models.Truck
	query := s.db.WithContext(ctx)
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	err := query.Find(&trucks).Error
	return trucks, translate(err)
}

// UpdateTruck persists profile changes to an existing truck.
func (s *Store) UpdateTruck(ctx context.Context, truck *models.Truck) error {
	err := s.db.WithContext(ctx).Model(truck).Updates(map[string]interface{}{
		"name":           truck.Name,
		"email":          truck.Email,
		"phone_number":   truck.PhoneNumber,
		"logo_image":     truck.LogoImage,
		"menu_image":     truck.MenuImage,
		"social_media_1": truck.SocialMedia1,
		"social_media_2": truck.SocialMedia2,
		"bio":            truck.Bio,
	}).Error
	return translate(err)
}

// LocationUpdate carries a location change. Empty Latitude/Longitude means
// geocoding did not produce coordinates; the previous values are kept.
type LocationUpdate struct {
	Location  string
	OpenTime  string
	CloseTime string
	Latitude  string
	Longitude string
}

func (s *Store) UpdateTruckLocation(ctx context.Context, truckID uint, update LocationUpdate) error {
	fields := map[string]interface{}{
		"location":   update.Location,
		"open_time":  update.OpenTime,
		"close_time": update.CloseTime,
	}
	if update.Latitude != "" && update.Longitude != "" {
		fields["latitude"] = update.Latitude
		fields["longitude"] = update.Longitude
	}
	err := s.db.WithContext(ctx).Model(&models.Truck{}).
		Where("id = ?", truckID).Updates(fields).Error
	return translate(err)
}

// DeleteTruck removes a truck with its reviews and favorites in one
// transaction.
func (s *Store) DeleteTruck(ctx context.Context, truckID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("truck_id = ?", truckID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("truck_id = ?", truckID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Truck{}, truckID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}
