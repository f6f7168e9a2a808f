package handlers

import (
	"net/http"

	"confcentral/middleware"
	"confcentral/models"
	"confcentral/services/conference"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// ConferenceHandler exposes conference endpoints.
type ConferenceHandler struct {
	Service conference.ConferenceService
}

func NewConferenceHandler(svc conference.ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{Service: svc}
}

// CreateConferenceHandler creates a conference owned by the caller.
func (h *ConferenceHandler) CreateConferenceHandler(c *gin.Context) {
	userID, email := middleware.CurrentUser(c)

	var form models.ConferenceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid conference form: %v", err))
		return
	}

	created, err := h.Service.CreateConference(c.Request.Context(), userID, email, &form)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetConferenceHandler fetches one conference by key.
func (h *ConferenceHandler) GetConferenceHandler(c *gin.Context) {
	conf, err := h.Service.GetConference(c.Param("conferenceKey"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}

// GetConferencesCreatedHandler lists the caller's conferences.
func (h *ConferenceHandler) GetConferencesCreatedHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	conferences, err := h.Service.GetConferencesCreated(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conferences": conferences})
}

// GetConferencesToAttendHandler lists the caller's registered conferences.
func (h *ConferenceHandler) GetConferencesToAttendHandler(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	conferences, err := h.Service.GetConferencesToAttend(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conferences": conferences})
}

// QueryConferencesHandler runs a filtered conference search. POST so the
// filter list travels in the body.
func (h *ConferenceHandler) QueryConferencesHandler(c *gin.Context) {
	var form models.ConferenceQueryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid query form: %v", err))
		return
	}

	conferences, err := h.Service.QueryConferences(&form)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conferences": conferences})
}
