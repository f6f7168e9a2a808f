package handlers

import (
	"net/http"

	"confcentral/services/announcement"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler exposes the cached announcement strings.
type AnnouncementHandler struct {
	Service announcement.AnnouncementService
}

func NewAnnouncementHandler(svc announcement.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{Service: svc}
}

// GetAnnouncementHandler returns the nearly-sold-out announcement. 204 when
// none has been published.
func (h *AnnouncementHandler) GetAnnouncementHandler(c *gin.Context) {
	a, err := h.Service.GetAnnouncement(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if a == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetFeaturedSpeakerHandler returns the featured-speaker announcement.
func (h *AnnouncementHandler) GetFeaturedSpeakerHandler(c *gin.Context) {
	a, err := h.Service.GetFeaturedSpeaker(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	if a == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, a)
}
