package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:UserID"`
	TruckID   uint      `json:"truck_id" gorm:"not null"`
	Truck     Truck     `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	Rating    float64   `json:"rating" gorm:"not null"`
	Body      string    `json:"review" gorm:"column:review;not null"`
	Image1    string    `json:"image_1,omitempty"`
	Image2    string    `json:"image_2,omitempty"`
	Image3    string    `json:"image_3,omitempty"`
	Image4    string    `json:"image_4,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
