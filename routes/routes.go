package routes

import (
	"net/http"
	"time"

	"confcentral/handlers"
	"confcentral/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Profile      *handlers.ProfileHandler
	Conference   *handlers.ConferenceHandler
	Session      *handlers.SessionHandler
	Registration *handlers.RegistrationHandler
	Announcement *handlers.AnnouncementHandler
}

// RegisterProfileRoutes registers profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Profile.GetProfileHandler)
		api.POST("", hb.Profile.SaveProfileHandler)
	}
}

// RegisterConferenceRoutes registers conference management endpoints.
func RegisterConferenceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/conferences")
	{
		// Public conference endpoints (lookup and search).
		api.GET("/:conferenceKey", hb.Conference.GetConferenceHandler)
		api.POST("/query", hb.Conference.QueryConferencesHandler)

		// Endpoints acting on the caller's data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Conference.CreateConferenceHandler)
		protected.GET("/created", hb.Conference.GetConferencesCreatedHandler)
		protected.GET("/attending", hb.Conference.GetConferencesToAttendHandler)
		protected.POST("/:conferenceKey/registration", hb.Registration.RegisterForConferenceHandler)
		protected.DELETE("/:conferenceKey/registration", hb.Registration.UnregisterFromConferenceHandler)
	}
}

// RegisterSessionRoutes registers session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.POST("/query", hb.Session.QuerySessionsHandler)
		api.GET("/conference/:conferenceKey", hb.Session.GetConferenceSessionsHandler)
		api.GET("/conference/:conferenceKey/type/:type", hb.Session.GetConferenceSessionsByTypeHandler)
		api.GET("/speaker/:speaker", hb.Session.GetSessionsBySpeakerHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/conference/:conferenceKey", hb.Session.CreateSessionHandler)
	}
}

// RegisterWishlistRoutes registers wishlist endpoints.
func RegisterWishlistRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wishlist")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Registration.GetWishlistHandler)
		api.POST("/:sessionKey", hb.Registration.AddSessionToWishlistHandler)
		api.DELETE("/:sessionKey", hb.Registration.RemoveSessionFromWishlistHandler)
	}
}

// RegisterAnnouncementRoutes registers announcement endpoints.
func RegisterAnnouncementRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/announcements")
	{
		api.GET("", hb.Announcement.GetAnnouncementHandler)
		api.GET("/featured-speaker", hb.Announcement.GetFeaturedSpeakerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Conference Central backend"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfileRoutes(r, hb)
	RegisterConferenceRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterWishlistRoutes(r, hb)
	RegisterAnnouncementRoutes(r, hb)
	RegisterHealthRoute(r)
}
