package handlers

import (
	"net/http"
	"strconv"

	"food-truck-api/middleware"
	"food-truck-api/models"
	"food-truck-api/policy"
	"food-truck-api/store"

	"github.com/gin-gonic/gin"
)

// ── Truck registration & management ─────────────────────────────────────────

type RegisterTruckRequest struct {
	Name         string `json:"name" binding:"required,min=6,max=25"`
	Email        string `json:"email" binding:"required,email,min=10,max=40"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	LogoImage    string `json:"logo_image"`
	MenuImage    string `json:"menu_image" binding:"required"`
	SocialMedia1 string `json:"social_media_1"`
	SocialMedia2 string `json:"social_media_2"`
	Bio          string `json:"bio"`
}

// RegisterTruck creates the business profile for a business-role user.
// One truck per account.
func (h *Handlers) RegisterTruck(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	owned, err := h.store.CountTrucksByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if dec := policy.Decide(actor, policy.ActionRegisterTruck, policy.Target{ActorTrucks: owned}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req RegisterTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	truck := models.Truck{
		UserID:       actor.ID,
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		LogoImage:    req.LogoImage,
		MenuImage:    req.MenuImage,
		SocialMedia1: req.SocialMedia1,
		SocialMedia2: req.SocialMedia2,
		Bio:          req.Bio,
		Location:     models.DefaultLocation,
	}
	if truck.LogoImage == "" {
		truck.LogoImage = models.DefaultLogoImage
	}

	if err := h.store.CreateTruck(c.Request.Context(), &truck); err != nil {
		storeError(c, err, "Truck not found", "Truck name or email already taken")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Truck registered", "truck": truck})
}

// ListTrucks returns all trucks (public); `q` filters by name substring
func (h *Handlers) ListTrucks(c *gin.Context) {
	trucks, err := h.store.ListTrucks(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(trucks), "trucks": trucks})
}

// GetTruck returns a truck's public profile with its average rating and
// the four most recent reviews.
func (h *Handlers) GetTruck(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	truck, err := h.store.GetTruck(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Truck not found", "")
		return
	}

	avg, rated, err := h.store.AverageRating(c.Request.Context(), truck.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	reviews, err := h.store.ListTruckReviews(c.Request.Context(), truck.ID, store.RecentReviewLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	resp := gin.H{
		"truck":          truck,
		"average_rating": nil,
		"reviews":        reviews,
	}
	if rated {
		resp["average_rating"] = avg
	}
	if actorID := middleware.GetUserID(c); actorID != 0 {
		favorited, err := h.store.IsFavorite(c.Request.Context(), actorID, truck.ID)
		if err == nil {
			resp["is_favorite"] = favorited
		}
	}
	c.JSON(http.StatusOK, resp)
}

type UpdateTruckRequest struct {
	Name         string `json:"name" binding:"required,min=6,max=25"`
	Email        string `json:"email" binding:"required,email,min=10,max=40"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	LogoImage    string `json:"logo_image"`
	MenuImage    string `json:"menu_image" binding:"required"`
	SocialMedia1 string `json:"social_media_1"`
	SocialMedia2 string `json:"social_media_2"`
	Bio          string `json:"bio"`
	Password     string `json:"password" binding:"required"`
}

// UpdateTruck edits the truck profile. Owner only, and the owner's
// current password must verify.
func (h *Handlers) UpdateTruck(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	truck, err := h.store.GetTruck(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Truck not found", "")
		return
	}
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionEditTruck, policy.Target{OwnerID: truck.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !actor.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password Incorrect. Please try again."})
		return
	}

	truck.Name = req.Name
	truck.Email = req.Email
	truck.PhoneNumber = req.PhoneNumber
	truck.MenuImage = req.MenuImage
	truck.SocialMedia1 = req.SocialMedia1
	truck.SocialMedia2 = req.SocialMedia2
	truck.Bio = req.Bio
	truck.LogoImage = req.LogoImage
	if truck.LogoImage == "" {
		truck.LogoImage = models.DefaultLogoImage
	}

	if err := h.store.UpdateTruck(c.Request.Context(), truck); err != nil {
		storeError(c, err, "Truck not found", "Truck name or email already taken")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "truck": truck})
}

type UpdateLocationRequest struct {
	Location  string `json:"location" binding:"required"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// UpdateTruckLocation saves the truck's location text and hours, then
// geocodes the address. A geocoding failure keeps the text and the
// previous coordinates; the response carries a warning instead of failing.
func (h *Handlers) UpdateTruckLocation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	truck, err := h.store.GetTruck(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Truck not found", "")
		return
	}
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionUpdateLocation, policy.Target{OwnerID: truck.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	update := store.LocationUpdate{
		Location:  req.Location,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}

	warning := ""
	coords, err := h.geocoder.Lookup(c.Request.Context(), req.Location)
	if err != nil {
		warning = "Address could not be geocoded; location saved without map coordinates"
	} else {
		update.Latitude = coords.Latitude
		update.Longitude = coords.Longitude
	}

	if err := h.store.UpdateTruckLocation(c.Request.Context(), truck.ID, update); err != nil {
		storeError(c, err, "Truck not found", "Unable to update location")
		return
	}

	resp := gin.H{"message": "Location successfully updated!"}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// ListTruckReviews returns the full review listing for a truck, capped
func (h *Handlers) ListTruckReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	truck, err := h.store.GetTruck(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Truck not found", "")
		return
	}
	reviews, err := h.store.ListTruckReviews(c.Request.Context(), truck.ID, store.ReviewListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"truck": truck.Name, "count": len(reviews), "reviews": reviews})
}
