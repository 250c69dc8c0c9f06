package handlers

import (
	"net/http"
	"strconv"

	"food-truck-api/policy"

	"github.com/gin-gonic/gin"
)

// GetUser shows a user profile to any logged-in viewer
func (h *Handlers) GetUser(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionViewUser, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "User not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUserFavorites shows the trucks a user has favorited
func (h *Handlers) ListUserFavorites(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionViewUser, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "User not found", "")
		return
	}
	favorites, err := h.store.ListFavorites(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Username, "count": len(favorites), "favorites": favorites})
}

// ListUserReviews shows every review a user has written
func (h *Handlers) ListUserReviews(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}
	if dec := policy.Decide(actor, policy.ActionViewUser, policy.Target{}); !dec.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": dec.Reason})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		storeError(c, err, "User not found", "")
		return
	}
	reviews, err := h.store.ListUserReviews(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Username, "count": len(reviews), "reviews": reviews})
}
