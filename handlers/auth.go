package handlers

import (
	"net/http"

	"food-truck-api/middleware"
	"food-truck-api/models"
	"food-truck-api/policy"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username     string          `json:"username" binding:"required,min=6,max=20"`
	Email        string          `json:"email" binding:"required,email,min=10,max=40"`
	Password     string          `json:"password" binding:"required,min=6"`
	FirstName    string          `json:"first_name" binding:"required"`
	LastName     string          `json:"last_name" binding:"required"`
	ProfileImage string          `json:"profile_image"`
	Role         models.UserRole `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new user account
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: personal or business"})
		return
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
		Role:         req.Role,
	}
	if user.ProfileImage == "" {
		user.ProfileImage = models.DefaultProfileImage
	}

	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		storeError(c, err, "User not found", "Username or email already taken")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    user,
	})
}

// Login authenticates a user by username and returns a JWT
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hello, " + user.FirstName + "!",
		"token":   token,
		"user":    user,
	})
}

// GetProfile returns the authenticated user's own record
func (h *Handlers) GetProfile(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": actor})
}

type UpdateProfileRequest struct {
	Username     string          `json:"username" binding:"required,min=6,max=20"`
	Email        string          `json:"email" binding:"required,email,min=10,max=40"`
	FirstName    string          `json:"first_name" binding:"required"`
	LastName     string          `json:"last_name" binding:"required"`
	ProfileImage string          `json:"profile_image"`
	Role         models.UserRole `json:"role" binding:"required"`
	Password     string          `json:"password" binding:"required"`
}

// UpdateProfile edits the authenticated user's profile. The current
// password must be supplied and verify.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionEditProfile, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: personal or business"})
		return
	}
	if !actor.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password Incorrect. Please try again."})
		return
	}

	actor.Username = req.Username
	actor.Email = req.Email
	actor.FirstName = req.FirstName
	actor.LastName = req.LastName
	actor.Role = req.Role
	actor.ProfileImage = req.ProfileImage
	if actor.ProfileImage == "" {
		actor.ProfileImage = models.DefaultProfileImage
	}

	if err := h.store.UpdateUser(c.Request.Context(), actor); err != nil {
		storeError(c, err, "User not found", "New username/email already taken")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "user": actor})
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" binding:"required,min=6"`
	NewPassword        string `json:"new_password" binding:"required,min=6"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required,min=6"`
}

// ChangePassword updates the authenticated user's password after
// verifying the current one.
func (h *Handlers) ChangePassword(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionChangePassword, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !actor.CheckPassword(req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to update password. Current password does not match."})
		return
	}
	if req.NewPassword != req.NewPasswordConfirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to update password. New password / Confirmed password do not match."})
		return
	}

	hash, err := models.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := h.store.UpdatePassword(c.Request.Context(), actor.ID, hash); err != nil {
		storeError(c, err, "User not found", "Unable to update password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// DeleteAccount removes the authenticated user and cascades to owned
// trucks, reviews and favorites.
func (h *Handlers) DeleteAccount(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionDeleteAccount, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), actor.ID); err != nil {
		storeError(c, err, "User not found", "Unable to delete account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goodbye!"})
}
