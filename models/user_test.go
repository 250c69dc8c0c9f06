package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash, "password must never be stored as plaintext")

	user := User{PasswordHash: hash}
	assert.True(t, user.CheckPassword("Secret123"))
	assert.False(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("Secret1234"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RolePersonal.Valid())
	assert.True(t, RoleBusiness.Valid())
	assert.False(t, UserRole("admin").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestTruckHasCoordinates(t *testing.T) {
	assert.False(t, (&Truck{}).HasCoordinates())
	assert.False(t, (&Truck{Latitude: "41.52025"}).HasCoordinates())
	assert.True(t, (&Truck{Latitude: "41.52025", Longitude: "-90.54029"}).HasCoordinates())
}
