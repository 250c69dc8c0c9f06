package handlers

import (
	"net/http"

	"food-truck-api/geocode"
	"food-truck-api/middleware"

	"github.com/gin-gonic/gin"
)

// Home is the landing payload. Anonymous callers get a welcome; logged-in
// callers get the truck list with ratings and a static map URL carrying a
// marker for every geocoded truck.
func (h *Handlers) Home(c *gin.Context) {
	if middleware.GetUserID(c) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food Truck Locator. Sign up to see the map.",
		})
		return
	}

	trucks, err := h.store.ListTrucks(c.Request.Context(), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	listed := make([]gin.H, 0, len(trucks))
	for _, truck := range trucks {
		entry := gin.H{"truck": truck, "average_rating": nil}
		avg, rated, err := h.store.AverageRating(c.Request.Context(), truck.ID)
		if err == nil && rated {
			entry["average_rating"] = avg
		}
		listed = append(listed, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"map_url": geocode.StaticMapURL(h.cfg.MapBaseURL, h.cfg.GeocodeAPIKey, trucks),
		"count":   len(trucks),
		"trucks":  listed,
	})
}
