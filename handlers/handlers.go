package handlers

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"food-truck-api/config"
	"food-truck-api/geocode"
	"food-truck-api/middleware"
	"food-truck-api/models"
	"food-truck-api/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Geocoder resolves a free-text address into coordinates
type Geocoder interface {
	Lookup(ctx context.Context, address string) (geocode.Coordinates, error)
}

type Handlers struct {
	store    *store.Store
	geocoder Geocoder
	cfg      config.Config
}

func New(s *store.Store, g Geocoder, cfg config.Config) *Handlers {
	// Report field errors under their json names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
	return &Handlers{store: s, geocoder: g, cfg: cfg}
}

// currentUser loads the acting identity resolved by the auth middleware.
// The policy and store layers only ever see this explicit value.
func (h *Handlers) currentUser(c *gin.Context) (*models.User, bool) {
	id := middleware.GetUserID(c)
	if id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized"})
		return nil, false
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized"})
		return nil, false
	}
	return user, true
}

// bindError renders a binding failure as per-field messages
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid e-mail address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "gte":
		return "Must be at least " + fe.Param()
	case "lte":
		return "Must be at most " + fe.Param()
	}
	return "Invalid value"
}

// storeError maps store sentinels onto HTTP responses; conflictMsg names
// the uniqueness conflict for the user.
func storeError(c *gin.Context, err error, notFoundMsg, conflictMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflictMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
