package store

import (
	"context"
	"fmt"
	"testing"

	"food-truck-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// In-memory sqlite lives per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Truck{},
		&models.Review{},
		&models.Favorite{},
	))
	return db
}

func seedUser(t *testing.T, s *Store, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "not-a-real-hash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func seedTruck(t *testing.T, s *Store, ownerID uint, name string) *models.Truck {
	t.Helper()
	truck := &models.Truck{
		UserID:      ownerID,
		Name:        name,
		Email:       fmt.Sprintf("%s@trucks.example.com", name),
		PhoneNumber: "555-0100",
		MenuImage:   "/menus/default.jpg",
	}
	require.NoError(t, s.CreateTruck(context.Background(), truck))
	return truck
}

func seedReview(t *testing.T, s *Store, userID, truckID uint, rating float64) *models.Review {
	t.Helper()
	review := &models.Review{
		UserID:  userID,
		TruckID: truckID,
		Rating:  rating,
		Body:    "plenty of words about the food",
	}
	require.NoError(t, s.CreateReview(context.Background(), review))
	return review
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	seedUser(t, s, "grumpy_cat", models.RolePersonal)

	dup := &models.User{
		Username:     "grumpy_cat",
		Email:        "other-address@example.com",
		PasswordHash: "hash",
		FirstName:    "Other",
		LastName:     "Person",
		Role:         models.RolePersonal,
	}
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateTruckDuplicateName(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "first_owner", models.RoleBusiness)
	other := seedUser(t, s, "second_owner", models.RoleBusiness)
	seedTruck(t, s, owner.ID, "Taco Spot")

	dup := &models.Truck{
		UserID:      other.ID,
		Name:        "Taco Spot",
		Email:       "different@trucks.example.com",
		PhoneNumber: "555-0101",
		MenuImage:   "/menus/other.jpg",
	}
	err := s.CreateTruck(ctx, dup)
	assert.ErrorIs(t, err, ErrConflict)

	// Conflict must not leave a row behind
	trucks, err := s.ListTrucks(ctx, "Taco Spot")
	require.NoError(t, err)
	assert.Len(t, trucks, 1)
}

func TestCreateTruckRequiresOwner(t *testing.T) {
	s := New(newTestDB(t))
	err := s.CreateTruck(context.Background(), &models.Truck{
		Name:        "Orphan Truck",
		Email:       "orphan@trucks.example.com",
		PhoneNumber: "555-0102",
		MenuImage:   "/menus/orphan.jpg",
	})
	assert.ErrorIs(t, err, ErrMissingRef)
}

func TestCreateReviewRequiresBothRefs(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	err := s.CreateReview(ctx, &models.Review{TruckID: 1, Rating: 4, Body: "ten characters plus"})
	assert.ErrorIs(t, err, ErrMissingRef)

	err = s.CreateReview(ctx, &models.Review{UserID: 1, Rating: 4, Body: "ten characters plus"})
	assert.ErrorIs(t, err, ErrMissingRef)
}

func TestDeleteUserCascades(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	seedReview(t, s, fan.ID, truck.ID, 4.0)
	seedReview(t, s, fan.ID, truck.ID, 5.0)
	_, err := s.ToggleFavorite(ctx, fan.ID, truck.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, owner.ID))

	_, err = s.GetUser(ctx, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetTruck(ctx, truck.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	reviews, err := s.ListUserReviews(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews, "reviews of a deleted truck must not survive")

	favorites, err := s.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// The reviewer's own account is untouched
	_, err = s.GetUser(ctx, fan.ID)
	assert.NoError(t, err)
}

func TestDeleteUserRemovesOwnReviewsAndFavorites(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	seedReview(t, s, fan.ID, truck.ID, 3.5)
	_, err := s.ToggleFavorite(ctx, fan.ID, truck.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, fan.ID))

	reviews, err := s.ListTruckReviews(ctx, truck.ID, ReviewListLimit)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// Truck survives its reviewer
	_, err = s.GetTruck(ctx, truck.ID)
	assert.NoError(t, err)
}

func TestDeleteTruckCascades(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")
	seedReview(t, s, fan.ID, truck.ID, 4.5)
	_, err := s.ToggleFavorite(ctx, fan.ID, truck.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTruck(ctx, truck.ID))

	_, err = s.GetTruck(ctx, truck.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	reviews, err := s.ListUserReviews(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	favorites, err := s.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavoriteIdempotence(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	favorited, err := s.ToggleFavorite(ctx, fan.ID, truck.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = s.ToggleFavorite(ctx, fan.ID, truck.ID)
	require.NoError(t, err)
	assert.False(t, favorited, "toggling twice must return to the original state")

	favorites, err := s.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestAverageRating(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	// No reviews yet: the sentinel, never a numeric zero
	_, rated, err := s.AverageRating(ctx, truck.ID)
	require.NoError(t, err)
	assert.False(t, rated)

	seedReview(t, s, fan.ID, truck.ID, 4.0)
	seedReview(t, s, fan.ID, truck.ID, 5.0)
	seedReview(t, s, fan.ID, truck.ID, 3.0)

	avg, rated, err := s.AverageRating(ctx, truck.ID)
	require.NoError(t, err)
	assert.True(t, rated)
	assert.Equal(t, 4.0, avg)
}

func TestAverageRatingRounding(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	seedReview(t, s, fan.ID, truck.ID, 4.5)
	seedReview(t, s, fan.ID, truck.ID, 4.0)
	seedReview(t, s, fan.ID, truck.ID, 4.0)

	avg, rated, err := s.AverageRating(ctx, truck.ID)
	require.NoError(t, err)
	assert.True(t, rated)
	assert.Equal(t, 4.2, avg)
}

func TestListTruckReviewsNewestFirstCapped(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	fan := seedUser(t, s, "hungry_fan", models.RolePersonal)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	var ids []uint
	for i := 0; i < 6; i++ {
		review := seedReview(t, s, fan.ID, truck.ID, 3.0)
		ids = append(ids, review.ID)
	}

	recent, err := s.ListTruckReviews(ctx, truck.ID, RecentReviewLimit)
	require.NoError(t, err)
	require.Len(t, recent, RecentReviewLimit)
	assert.Equal(t, ids[5], recent[0].ID, "newest review comes first")
	assert.Equal(t, ids[2], recent[3].ID)

	all, err := s.ListTruckReviews(ctx, truck.ID, ReviewListLimit)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestUpdateTruckLocationKeepsCoordinatesOnGeocodeFailure(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	truck := seedTruck(t, s, owner.ID, "Taco Spot")

	require.NoError(t, s.UpdateTruckLocation(ctx, truck.ID, LocationUpdate{
		Location:  "200 Main St, Davenport IA",
		Latitude:  "41.52025",
		Longitude: "-90.54029",
	}))

	// Geocoding failed this time: text updates, coordinates stay
	require.NoError(t, s.UpdateTruckLocation(ctx, truck.ID, LocationUpdate{
		Location: "somewhere unresolvable",
	}))

	got, err := s.GetTruck(ctx, truck.ID)
	require.NoError(t, err)
	assert.Equal(t, "somewhere unresolvable", got.Location)
	assert.Equal(t, "41.52025", got.Latitude)
	assert.Equal(t, "-90.54029", got.Longitude)
}

func TestUpdateUserConflict(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	first := seedUser(t, s, "first_user", models.RolePersonal)
	seedUser(t, s, "second_user", models.RolePersonal)

	first.Username = "second_user"
	err := s.UpdateUser(ctx, first)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBusinessOwnsAtMostOneTruck(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	owner := seedUser(t, s, "taco_owner", models.RoleBusiness)
	seedTruck(t, s, owner.ID, "Taco Spot")

	count, err := s.CountTrucksByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "registration handlers consult this count to block a second truck")
}
