package routes

import (
	"food-truck-api/handlers"
	"food-truck-api/middleware"
	"food-truck-api/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.Use(middleware.RequestID(), middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	public.Use(middleware.OptionalAuth())
	{
		// Auth
		public.POST("/auth/signup", h.Signup)
		public.POST("/auth/login", h.Login)

		// Homepage & truck browsing (no auth needed; homepage map only
		// renders for logged-in callers)
		public.GET("/home", h.Home)
		public.GET("/trucks", h.ListTrucks)
		public.GET("/trucks/:id", h.GetTruck)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		// Own account
		auth.GET("/profile", h.GetProfile)
		auth.PUT("/profile", h.UpdateProfile)
		auth.PUT("/profile/password", h.ChangePassword)
		auth.DELETE("/profile", h.DeleteAccount)

		// Other users
		auth.GET("/users/:id", h.GetUser)
		auth.GET("/users/:id/favorites", h.ListUserFavorites)
		auth.GET("/users/:id/reviews", h.ListUserReviews)

		// Favorites & reviews
		auth.POST("/trucks/:id/favorite", h.ToggleFavorite)
		auth.GET("/trucks/:id/reviews", h.ListTruckReviews)
		auth.POST("/trucks/:id/reviews", h.AddReview)
		auth.PUT("/reviews/:id", h.EditReview)
		auth.DELETE("/reviews/:id", h.DeleteReview)
	}

	// ── Business owner routes ──────────────────────────────────────
	business := r.Group("/api")
	business.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleBusiness))
	{
		business.POST("/trucks", h.RegisterTruck)
		business.PUT("/trucks/:id", h.UpdateTruck)
		business.PUT("/trucks/:id/location", h.UpdateTruckLocation)
	}
}
