package handlers

import (
	"net/http"
	"strconv"

	"food-truck-api/policy"

	"github.com/gin-gonic/gin"
)

// ToggleFavorite adds the truck to the actor's favorites, or removes it
// if already present. Owners cannot favorite their own truck.
func (h *Handlers) ToggleFavorite(c *gin.Context) {
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
	if dec := policy.Decide(actor, policy.ActionToggleFavorite, policy.Target{OwnerID: truck.UserID}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	favorited, err := h.store.ToggleFavorite(c.Request.Context(), actor.ID, truck.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	message := "Truck successfully removed from favorites."
	if favorited {
		message = "Truck successfully added to favorites."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "favorited": favorited})
}
