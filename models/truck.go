package models

import "time"

const DefaultLogoImage = "/static/images/truck_default_img.jpg"

// DefaultLocation is shown for trucks that have not posted a location yet
const DefaultLocation = "Closed"

type Truck struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	Owner        User      `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"not null"`
	LogoImage    string    `json:"logo_image" gorm:"default:'/static/images/truck_default_img.jpg'"`
	MenuImage    string    `json:"menu_image" gorm:"not null"`
	SocialMedia1 string    `json:"social_media_1,omitempty"`
	SocialMedia2 string    `json:"social_media_2,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	OpenTime     string    `json:"open_time,omitempty"`
	CloseTime    string    `json:"close_time,omitempty"`
	Location     string    `json:"location" gorm:"default:'Closed'"`
	Latitude     string    `json:"latitude"`
	Longitude    string    `json:"longitude"`
	Reviews      []Review  `json:"reviews,omitempty" gorm:"foreignKey:TruckID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the truck has been geocoded and can be
// placed on the map
func (t *Truck) HasCoordinates() bool {
	return t.Latitude != "" && t.Longitude != ""
}
