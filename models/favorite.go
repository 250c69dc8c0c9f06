package models

import "time"

// Favorite marks a truck as liked by a user. The composite unique index
// guarantees at most one row per (user, truck) pair even under concurrent
// double-submission of the toggle.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_truck"`
	TruckID   uint      `json:"truck_id" gorm:"not null;uniqueIndex:idx_favorites_user_truck"`
	Truck     Truck     `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	CreatedAt time.Time `json:"created_at"`
}
