package handlers

import (
	"math"
	"net/http"
	"strconv"

	"food-truck-api/models"
	"food-truck-api/policy"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Rating float64 `json:"rating" binding:"gte=0,lte=5"`
	Review string  `json:"review" binding:"required,min=10"`
	Image1 string  `json:"image_1"`
	Image2 string  `json:"image_2"`
	Image3 string  `json:"image_3"`
	Image4 string  `json:"image_4"`
}

// validHalfStep enforces the 0.5 rating granularity the slider allows
func validHalfStep(rating float64) bool {
	return math.Mod(rating*2, 1) == 0
}

// AddReview posts a review on a truck. Owners cannot review themselves.
func (h *Handlers) AddReview(c *gin.Context) {
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
	if dec := policy.Decide(actor, policy.ActionAddReview, policy.Target{OwnerID: truck.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validHalfStep(req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": gin.H{"rating": "Must be in steps of 0.5"},
		})
		return
	}

	review := models.Review{
		UserID:  actor.ID,
		TruckID: truck.ID,
		Rating:  req.Rating,
		Body:    req.Review,
		Image1:  req.Image1,
		Image2:  req.Image2,
		Image3:  req.Image3,
		Image4:  req.Image4,
	}
	if err := h.store.CreateReview(c.Request.Context(), &review); err != nil {
		storeError(c, err, "Truck not found", "Unable to submit review")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review successfully submitted!", "review": review})
}

// EditReview updates a review. Author only; a denial commits nothing.
func (h *Handlers) EditReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	review, err := h.store.GetReview(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Review not found", "")
		return
	}
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionEditReview, policy.Target{OwnerID: review.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validHalfStep(req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": gin.H{"rating": "Must be in steps of 0.5"},
		})
		return
	}

	review.Rating = req.Rating
	review.Body = req.Review
	review.Image1 = req.Image1
	review.Image2 = req.Image2
	review.Image3 = req.Image3
	review.Image4 = req.Image4

	if err := h.store.UpdateReview(c.Request.Context(), review); err != nil {
		storeError(c, err, "Review not found", "Unable to update review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated!", "review": review})
}

// DeleteReview removes a review. Author only.
func (h *Handlers) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	review, err := h.store.GetReview(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "Review not found", "")
		return
	}
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionDeleteReview, policy.Target{OwnerID: review.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	if err := h.store.DeleteReview(c.Request.Context(), review.ID); err != nil {
		storeError(c, err, "Review not found", "Unable to delete review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
