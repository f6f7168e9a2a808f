package handlers

import (
	"net/http"

	"confcentral/middleware"
	"confcentral/models"
	"confcentral/services/session"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes session endpoints.
type SessionHandler struct {
	Service session.SessionService
}

func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// CreateSessionHandler creates a session under a conference. Organizer only.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	userID, email := middleware.CurrentUser(c)
	conferenceKey := c.Param("conferenceKey")

	var form models.SessionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid session form: %v", err))
		return
	}

	created, err := h.Service.CreateSession(c.Request.Context(), userID, email, conferenceKey, &form)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetConferenceSessionsHandler lists all sessions of a conference.
func (h *SessionHandler) GetConferenceSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.GetConferenceSessions(c.Param("conferenceKey"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetConferenceSessionsByTypeHandler lists a conference's sessions of one type.
func (h *SessionHandler) GetConferenceSessionsByTypeHandler(c *gin.Context) {
	sessions, err := h.Service.GetConferenceSessionsByType(c.Param("conferenceKey"), c.Param("type"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSessionsBySpeakerHandler lists a speaker's sessions across conferences.
func (h *SessionHandler) GetSessionsBySpeakerHandler(c *gin.Context) {
	sessions, err := h.Service.GetSessionsBySpeaker(c.Param("speaker"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// QuerySessionsHandler runs a filtered session search.
func (h *SessionHandler) QuerySessionsHandler(c *gin.Context) {
	var form models.SessionQueryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, utils.ValidationErr("invalid query form: %v", err))
		return
	}

	sessions, err := h.Service.QuerySessions(&form)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
