package store

import (
	"context"

	"food-truck-api/models"

	"gorm.io/gorm"
)

// CreateUser inserts a new user. Duplicate username or email surfaces
// as ErrConflict.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateUser persists profile changes. The password hash is not touched here.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"username":      user.Username,
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"profile_image": user.ProfileImage,
		"role":          user.Role,
	}).Error
	return translate(err)
}

func (s *Store) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
	return translate(err)
}

// DeleteUser removes the user and everything hanging off it — owned trucks
// with their reviews and favorites, plus the user's own reviews and
// favorites — in one transaction.
func (s *Store) DeleteUser(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var truckIDs []uint
		if err := tx.Model(&models.Truck{}).Where("user_id = ?", userID).
			Pluck("id", &truckIDs).Error; err != nil {
			return err
		}
		if len(truckIDs) > 0 {
			if err := tx.Where("truck_id IN ?", truckIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("truck_id IN ?", truckIDs).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", truckIDs).Delete(&models.Truck{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.User{}, userID)
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
