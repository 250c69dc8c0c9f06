package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole defines the two account types in the system
type UserRole string

const (
	RolePersonal UserRole = "personal"
	RoleBusiness UserRole = "business"
)

// Valid reports whether the role is one of the known account types
func (r UserRole) Valid() bool {
	switch r {
	case RolePersonal, RoleBusiness:
		return true
	}
	return false
}

const DefaultProfileImage = "/static/images/user_default_img.jpg"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	ProfileImage string    `json:"profile_image" gorm:"default:'/static/images/user_default_img.jpg'"`
	Role         UserRole  `json:"role" gorm:"not null"`
	Trucks       []Truck   `json:"trucks,omitempty" gorm:"foreignKey:UserID"`
	Reviews      []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether the plaintext password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
