package session

import (
	"context"

	"confcentral/models"
)

// SessionService defines session creation and lookups.
type SessionService interface {
	// CreateSession creates a session under the conference. Only the
	// conference organizer may do this. The confirmation email and the
	// featured-speaker check run after the save, best effort.
	CreateSession(ctx context.Context, userID, email, conferenceKey string, form *models.SessionForm) (*models.Session, error)
	// GetConferenceSessions lists all sessions of a conference.
	GetConferenceSessions(conferenceKey string) ([]models.Session, error)
	// GetConferenceSessionsByType lists a conference's sessions of one type.
	GetConferenceSessionsByType(conferenceKey, sessionType string) ([]models.Session, error)
	// GetSessionsBySpeaker lists a speaker's sessions across conferences.
	GetSessionsBySpeaker(speaker string) ([]models.Session, error)
	// QuerySessions runs an ad-hoc filtered session search.
	QuerySessions(form *models.SessionQueryForm) ([]models.Session, error)
}
