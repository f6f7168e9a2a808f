package handlers

import (
	"net/http"

	"confcentral/middleware"
	"confcentral/services/registration"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler exposes registration and wishlist endpoints.
type RegistrationHandler struct {
	Service registration.RegistrationService
}

func NewRegistrationHandler(svc registration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{Service: svc}
}

// RegisterForConferenceHandler books a seat for the caller.
func (h *RegistrationHandler) RegisterForConferenceHandler(c *gin.Context) {
	userID, email := middleware.CurrentUser(c)

	if err := h.Service.RegisterForConference(c.Request.Context(), userID, email, c.Param("conferenceKey")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": true})
}

// UnregisterFromConferenceHandler releases the caller's seat.
func (h *RegistrationHandler) UnregisterFromConferenceHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	if err := h.Service.UnregisterFromConference(c.Request.Context(), userID, c.Param("conferenceKey")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": false})
}

// AddSessionToWishlistHandler puts a session on the caller's wishlist.
func (h *RegistrationHandler) AddSessionToWishlistHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	if err := h.Service.AddSessionToWishlist(c.Request.Context(), userID, c.Param("sessionKey")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlisted": true})
}

// RemoveSessionFromWishlistHandler drops a session from the wishlist.
func (h *RegistrationHandler) RemoveSessionFromWishlistHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	if err := h.Service.RemoveSessionFromWishlist(c.Request.Context(), userID, c.Param("sessionKey")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlisted": false})
}

// GetWishlistHandler lists the sessions on the caller's wishlist.
func (h *RegistrationHandler) GetWishlistHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	sessions, err := h.Service.GetWishlistSessions(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
