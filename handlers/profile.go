package handlers

import (
	"net/http"

	"confcentral/middleware"
	"confcentral/models"
	"confcentral/services/profile"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes profile endpoints.
type ProfileHandler struct {
	Service profile.ProfileService
}

func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfileHandler returns the caller's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	p, err := h.Service.GetProfile(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveProfileHandler creates or updates the caller's profile.
func (h *ProfileHandler) SaveProfileHandler(c *gin.Context) {
	userID, email := middleware.CurrentUser(c)

	var form models.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid profile form: %v", err))
		return
	}

	p, err := h.Service.SaveProfile(userID, email, &form)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
