package sessionRepo

import "confcentral/models"

// SessionRepository defines methods for session data access. Sessions are
// written through the registration repository so creation shares the
// transactional machinery; this repo covers reads.
type SessionRepository interface {
	// GetByID retrieves a session by key. Returns nil, nil when absent.
	GetByID(id string) (*models.Session, error)
	// GetByKeys retrieves sessions for the given keys, preserving key
	// order. Missing keys are skipped.
	GetByKeys(keys []string) ([]models.Session, error)
	// GetByConference retrieves all sessions of a conference, by name.
	GetByConference(conferenceKey string) ([]models.Session, error)
	// GetByConferenceAndType retrieves a conference's sessions of one type.
	GetByConferenceAndType(conferenceKey, sessionType string) ([]models.Session, error)
	// GetByConferenceAndSpeaker retrieves a speaker's sessions within a
	// conference.
	GetByConferenceAndSpeaker(conferenceKey, speaker string) ([]models.Session, error)
	// GetBySpeaker retrieves a speaker's sessions across all conferences.
	GetBySpeaker(speaker string) ([]models.Session, error)
	// Query runs a validated session query plan.
	Query(plan *models.SessionQueryPlan) ([]models.Session, error)
}
