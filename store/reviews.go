package store

import (
	"context"
	"database/sql"
	"math"

	"food-truck-api/models"
)

// CreateReview inserts a new review. Both foreign keys are required.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	if review.UserID == 0 || review.TruckID == 0 {
		return ErrMissingRef
	}
	return translate(s.db.WithContext(ctx).Create(review).Error)
}

func (s *Store) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *Store) UpdateReview(ctx context.Context, review *models.Review) error {
	err := s.db.WithContext(ctx).Model(review).Updates(map[string]interface{}{
		"rating":  review.Rating,
		"review":  review.Body,
		"image_1": review.Image1,
		"image_2": review.Image2,
		"image_3": review.Image3,
		"image_4": review.Image4,
	}).Error
	return translate(err)
}

func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTruckReviews returns a truck's reviews newest-first, capped at limit.
func (s *Store) ListTruckReviews(ctx context.Context, truckID uint, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("truck_id = ?", truckID).
		Order("id desc").
		Limit(limit).
		Find(&reviews).Error
	return reviews, translate(err)
}

// ListUserReviews returns every review a user has written, newest-first.
func (s *Store) ListUserReviews(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Preload("Truck").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&reviews).Error
	return reviews, translate(err)
}

// AverageRating reports the mean rating for a truck rounded to one decimal.
// The second return is false when the truck has no reviews, which callers
// must render as "no rating" rather than 0.0.
func (s *Store) AverageRating(ctx context.Context, truckID uint) (float64, bool, error) {
	var avg sql.NullFloat64
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Where("truck_id = ?", truckID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, false, translate(err)
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return math.Round(avg.Float64*10) / 10, true, nil
}
